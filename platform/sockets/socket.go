package socket

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/DedS3t/drinkopoly-backend/app/models"
	"github.com/DedS3t/drinkopoly-backend/platform/engine"
	"github.com/DedS3t/drinkopoly-backend/platform/logging"
	"github.com/DedS3t/drinkopoly-backend/platform/queries"
	"github.com/DedS3t/drinkopoly-backend/platform/tokens"
	socketio "github.com/googollee/go-socket.io"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
)

// turn commands a client may send as socket events
var events = map[string]engine.CommandKind{
	"roll-dice":     engine.RollDice,
	"roll-prison":   engine.RollPrison,
	"roll-purchase": engine.RollPurchase,
	"skip-buy":      engine.SkipBuy,
	"confirm-rent":  engine.ConfirmRent,
	"dismiss-card":  engine.DismissCard,
	"dismiss-event": engine.DismissEvent,
	"end-turn":      engine.EndTurn,
	"quit-player":   engine.QuitPlayer,
}

var errForbidden = errors.New("token does not grant access to this game")

// decode parses an event payload and checks its token against the game it
// names, the same way RequireGame does for HTTP.
func decode(secret []byte, jsonStr string) (models.SocketCommand, error) {
	var payload models.SocketCommand
	if err := json.Unmarshal([]byte(jsonStr), &payload); err != nil {
		return payload, err
	}
	if payload.Game_id == "" {
		return payload, errors.New("game_id not passed")
	}
	claims, err := tokens.Parse(secret, payload.Token)
	if err != nil {
		return payload, err
	}
	if !tokens.CanPlay(claims, payload.Game_id) {
		return payload, errForbidden
	}
	return payload, nil
}

func command(event string, payload models.SocketCommand) (engine.Command, bool) {
	kind, ok := events[event]
	if !ok {
		return engine.Command{}, false
	}
	cmd := engine.Command{Kind: kind}
	if kind == engine.QuitPlayer {
		cmd.PlayerId = payload.Player_id
	}
	return cmd, true
}

// Broadcast pushes the snapshot to everyone in the game room.
func Broadcast(server *socketio.Server, gameId string, state models.GameState) {
	if server == nil {
		return
	}
	data, err := json.Marshal(state)
	if err != nil {
		logging.Game(gameId).WithError(err).Error("failed to encode snapshot")
		return
	}
	server.BroadcastToRoom("/", gameId, "game-state", string(data))
	if state.GameOver {
		server.BroadcastToRoom("/", gameId, "game-over")
	}
}

func CreateSocketIOServer(sessions *queries.Sessions, secret []byte) (*socketio.Server, error) {
	server, err := socketio.NewServer(nil)
	if err != nil {
		return nil, err
	}

	server.OnConnect("/", func(s socketio.Conn) error {
		s.SetContext("")
		return nil
	})

	server.OnEvent("/", "join-game", func(s socketio.Conn, jsonStr string) {
		payload, err := decode(secret, jsonStr)
		if err != nil {
			s.Emit("error-message", err.Error())
			return
		}
		state, err := sessions.Get(context.Background(), payload.Game_id)
		if err != nil {
			s.Emit("error-message", "Invalid game")
			s.Emit("failed")
			return
		}
		s.Join(payload.Game_id)
		data, _ := json.Marshal(state)
		s.Emit("game-state", string(data))
		logging.Game(payload.Game_id).WithField("socket", s.ID()).Info("socket joined game")
	})

	server.OnEvent("/", "leave-game", func(s socketio.Conn, jsonStr string) {
		payload, err := decode(secret, jsonStr)
		if err != nil {
			return
		}
		s.Leave(payload.Game_id)
	})

	for event := range events {
		event := event
		server.OnEvent("/", event, func(s socketio.Conn, jsonStr string) {
			payload, err := decode(secret, jsonStr)
			if err != nil {
				s.Emit("error-message", err.Error())
				return
			}
			cmd, _ := command(event, payload)
			state, err := sessions.Apply(context.Background(), payload.Game_id, cmd)
			if err != nil {
				s.Emit("error-message", err.Error())
				return
			}
			Broadcast(server, payload.Game_id, state)
		})
	}

	server.OnEvent("/", "restart-game", func(s socketio.Conn, jsonStr string) {
		payload, err := decode(secret, jsonStr)
		if err != nil {
			s.Emit("error-message", err.Error())
			return
		}
		state, err := sessions.Restart(context.Background(), payload.Game_id)
		if err != nil {
			s.Emit("error-message", err.Error())
			return
		}
		Broadcast(server, payload.Game_id, state)
	})

	server.OnError("/", func(s socketio.Conn, e error) {
		logrus.WithError(e).Warn("socket error")
	})

	server.OnDisconnect("/", func(s socketio.Conn, reason string) {
		s.LeaveAll()
	})

	return server, nil
}

// ListenAndServe runs the socket.io server behind CORS for the web client.
func ListenAndServe(server *socketio.Server, addr string, origin string) error {
	go func() {
		if err := server.Serve(); err != nil {
			logrus.WithError(err).Error("socket.io server stopped")
		}
	}()
	defer server.Close()

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{origin},
		AllowCredentials: true,
	})

	mux := http.NewServeMux()
	mux.Handle("/socket.io/", server)
	logrus.WithField("addr", addr).Info("socket.io listening")
	return http.ListenAndServe(addr, c.Handler(mux))
}
