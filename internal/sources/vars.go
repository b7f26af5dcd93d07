package sources

// Vars is the prompt variable array. Index 0 is never written; shells
// number their prompt variables from 1.
type Vars []string

// Ensure grows v with empty strings until index is addressable. Existing
// entries are never touched and v never shrinks.
func (v *Vars) Ensure(index int) {
	for len(*v) < index+1 {
		*v = append(*v, "")
	}
}
