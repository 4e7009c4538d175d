package set

import "testing"

func TestUnorderedSet_Clear(t *testing.T) {
	s := NewUnorderedSet[string]()

	s.Insert("apple")
	s.Insert("banana")
	s.Insert("cherry")

	s.Clear()

	if s.Size() != 0 {
		t.Errorf("Unexpected set size. Expected: %d, Got: %d", 0, s.Size())
	}

	elements := s.Items()
	if len(elements) != 0 {
		t.Error("Unexpected elements in the set after clearing")
	}
}

func TestUnorderedSet_Insert(t *testing.T) {
	s := NewUnorderedSet[string]()
	s.Insert("How")
	s.Insert("Are")
	s.Insert("How")
	s.Insert("You")

	if s.Size() != 3 {
		t.Errorf("Unexpected set size. Expected: %d, Got: %d", 3, s.Size())
	}

	if !s.Contain("How") {
		t.Error("Element 'How' not found in the set")
	}
	if !s.Contain("Are") {
		t.Error("Element 'Are' not found in the set")
	}
	if !s.Contain("You") {
		t.Error("Element 'You' not found in the set")
	}
}

func TestUnorderedSet_Items(t *testing.T) {
	s := NewUnorderedSet[string]()

	s.Insert("apple")
	s.Insert("banana")
	s.Insert("cherry")

	elements := s.Items()

	if len(elements) != 3 {
		t.Errorf("Unexpected number of elements. Expected: %d, Got: %d", 3, len(elements))
	}

	expectedElements := []string{"apple", "banana", "cherry"}
	for _, element := range expectedElements {
		found := false
		for _, e := range elements {
			if e == element {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("Element '%v' not found in the set", element)
		}
	}
}

func TestUnorderedSet_Remove(t *testing.T) {
	s := NewUnorderedSet[string]()

	s.Insert("apple")
	s.Insert("banana")
	s.Insert("cherry")

	s.Remove("banana")

	if s.Size() != 2 {
		t.Errorf("Unexpected set size. Expected: %d, Got: %d", 2, s.Size())
	}

	if s.Contain("banana") {
		t.Error("Element 'banana' still found in the set after removal")
	}
}

func TestUnorderedSet_Int32Offsets(t *testing.T) {
	s := NewUnorderedSet[int32]()
	s.Insert(3)
	s.Insert(5)
	s.Insert(3)

	if s.Size() != 2 {
		t.Errorf("Unexpected set size. Expected: %d, Got: %d", 2, s.Size())
	}
	if !s.Contain(5) {
		t.Error("Element 5 not found in the set")
	}
}
