package router

import "net/http"

type routeTrieNode struct {
	handler http.Handler

	children map[string]*routeTrieNode
}

func newRouteTrieNode() *routeTrieNode {
	return &routeTrieNode{
		children: map[string]*routeTrieNode{},
	}
}

type RouteTrie struct {
	root *routeTrieNode
}

func NewRouteTrie(rootHandler http.Handler) *RouteTrie {

	t := &RouteTrie{
		root: newRouteTrieNode(),
	}

	t.root.handler = rootHandler

	return t
}

// Insert attaches handler at the node addressed by parts. Only the deepest
// node gets the handler, intermediate nodes stay handler-less.
func (t *RouteTrie) Insert(parts []string, handler http.Handler) {

	node := t.root

	for _, part := range parts {
		child, exists := node.children[part]
		if !exists {
			child = newRouteTrieNode()
			node.children[part] = child
		}

		node = child
	}

	node.handler = handler
}

// Find walks the trie along parts. A miss on any part, or a node without a
// handler, yields nil.
func (t *RouteTrie) Find(parts []string) http.Handler {

	node := t.root

	for _, part := range parts {
		child, exists := node.children[part]
		if !exists {
			return nil
		}

		node = child
	}

	return node.handler
}
