package services

import "sync"

type NavigationController struct {
	mu     sync.Mutex
	cursor int
	length int
}

func NewNavigationController() *NavigationController {
	return &NavigationController{}
}

func (n *NavigationController) Reset(length int) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if length < 0 {
		length = 0
	}
	n.length = length
	n.cursor = 0
}

func (n *NavigationController) Next() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.cursor < n.length-1 {
		n.cursor++
	}
	return n.cursor
}

func (n *NavigationController) Prev() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.cursor > 0 {
		n.cursor--
	}
	return n.cursor
}

func (n *NavigationController) Current() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.cursor
}
