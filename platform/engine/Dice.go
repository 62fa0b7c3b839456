package engine

import (
	"math/rand"
	"sync"
)

// Roller is the injected source of randomness: die faces and uniform picks.
type Roller interface {
	Roll() int      // one die in [1,6]
	Intn(n int) int // uniform in [0,n)
}

type randomRoller struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

func NewRandomRoller(seed int64) Roller {
	return &randomRoller{rnd: rand.New(rand.NewSource(seed))}
}

func (r *randomRoller) Roll() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rnd.Intn(6) + 1
}

func (r *randomRoller) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rnd.Intn(n)
}

// ScriptedRoller replays fixed die faces and picks. Once a queue runs dry
// it answers 1 for dice and 0 for picks.
type ScriptedRoller struct {
	dice  []int
	picks []int
}

func NewScriptedRoller(dice ...int) *ScriptedRoller {
	return &ScriptedRoller{dice: dice}
}

func (s *ScriptedRoller) Dice(dice ...int) *ScriptedRoller {
	s.dice = append(s.dice, dice...)
	return s
}

func (s *ScriptedRoller) Pick(picks ...int) *ScriptedRoller {
	s.picks = append(s.picks, picks...)
	return s
}

func (s *ScriptedRoller) Roll() int {
	if len(s.dice) == 0 {
		return 1
	}
	v := s.dice[0]
	s.dice = s.dice[1:]
	return v
}

func (s *ScriptedRoller) Intn(n int) int {
	if len(s.picks) == 0 || n <= 0 {
		return 0
	}
	v := s.picks[0]
	s.picks = s.picks[1:]
	if v >= n {
		v = n - 1
	}
	return v
}

// Remaining reports how many scripted dice are left.
func (s *ScriptedRoller) Remaining() int {
	return len(s.dice)
}
