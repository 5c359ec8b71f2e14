package chain

import (
	"github.com/emirpasic/gods/stacks/arraystack"

	"github.com/katalvlaran/lcskit/alphabet"
)

// frame is one state on the work stack.
type frame struct {
	key  int             // state key, i*(m+1)+j
	ties []alphabet.Pair // tied picks in source order, absolute indexes
	next int             // next tie to examine
	best int             // best continuation length so far
	pick int             // index of the best tie, -1 if none
}

// frameStack is a typed LIFO over arraystack.
type frameStack struct {
	*arraystack.Stack
}

func newFrameStack() *frameStack {
	return &frameStack{Stack: arraystack.New()}
}

func (s *frameStack) Push(f *frame) {
	s.Stack.Push(f)
}

// Pop removes and returns the top frame. Returns false if the stack is empty.
func (s *frameStack) Pop() (*frame, bool) {
	f, ok := s.Stack.Pop()
	if !ok {
		return nil, false
	}

	return f.(*frame), true
}

// Peek returns the top frame without removing it.
func (s *frameStack) Peek() (*frame, bool) {
	f, ok := s.Stack.Peek()
	if !ok {
		return nil, false
	}

	return f.(*frame), true
}
