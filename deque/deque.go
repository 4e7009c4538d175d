/*
Package deque provides a generic double-ended queue (Deque), used as the
backing store for datrie.Trie.Permute's remaining-letters multiset
(spec.md §4.8 permute): at each backtracking step one occurrence of a
remaining offset is removed from the front and, on unwind, appended to the
back again, which a deque does in O(1).

This implementation is backed by a DoublyLinkedList from the linkedlist
package, which provides efficient O(1) head/tail operations and O(n)
element search or removal.

Key Features:
  - OfferFirst / OfferLast: add elements to the front or rear of the deque.
  - PollFirst / PollLast: remove elements from the front or rear.
  - PeekFirst / PeekLast: access elements at the front or rear without removal.
  - Remove: delete the first occurrence of an element (O(n) operation).
  - Size / IsEmpty: retrieve deque size or check for emptiness.

A Deque is not safe for concurrent use.
*/
package deque

import "github.com/kestrelcode/datrie/linkedlist"

// Deque is a generic double-ended queue backed by a doubly linked structure.
// It supports adding, removing, and peeking elements from both ends in O(1) time.
type Deque[T comparable] struct {
	data *linkedlist.DoublyLinkedList[T]
}

// NewDeque returns a new, empty Deque[T] backed by a doubly linked list.
func NewDeque[T comparable]() *Deque[T] {
	return &Deque[T]{
		data: linkedlist.NewLinkedList[T](),
	}
}

// OfferFirst inserts an element at the front of the deque.
func (d *Deque[T]) OfferFirst(elem T) {
	d.data.AddFirst(elem)
}

// PollFirst removes and returns the first element of the deque.
// Returns a zero value and an error if the deque is empty.
func (d *Deque[T]) PollFirst() (T, error) {
	return d.data.RemoveFirst()
}

// PeekFirst retrieves the first element without removing it.
func (d *Deque[T]) PeekFirst() (T, error) {
	return d.data.PeekFirst()
}

// OfferLast inserts an element at the end of the deque.
func (d *Deque[T]) OfferLast(elem T) {
	d.data.AddLast(elem)
}

// PollLast removes and returns the last element of the deque.
// Returns a zero value and an error if the deque is empty.
func (d *Deque[T]) PollLast() (T, error) {
	return d.data.RemoveLast()
}

// PeekLast retrieves the last element without removing it.
func (d *Deque[T]) PeekLast() (T, error) {
	return d.data.PeekLast()
}

// Remove deletes the first occurrence of the specified element from the deque.
// Returns true if an element was removed, false otherwise.
//
// Time Complexity: O(n)
func (d *Deque[T]) Remove(elem T) bool {
	_, err := d.data.Remove(elem)
	return err == nil
}

// Size returns the number of elements in the deque.
func (d *Deque[T]) Size() int {
	return d.data.Size()
}

// IsEmpty reports whether the deque has no elements.
func (d *Deque[T]) IsEmpty() bool {
	return d.data.IsEmpty()
}
