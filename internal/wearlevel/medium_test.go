package wearlevel

import "github.com/tamzrod/wearlevel/internal/medium"

// ---- fake media ----

// countingMedium counts raw write calls, including same-value writes.
type countingMedium struct {
	*medium.Memory
	writes int
}

func newCounting(size int) *countingMedium {
	return &countingMedium{Memory: medium.NewMemory(size)}
}

func (c *countingMedium) Write(addr uint16, b byte) error {
	c.writes++
	return c.Memory.Write(addr, b)
}

// tornMedium accepts budget raw writes and then silently drops the rest,
// as if power went away mid-operation.
type tornMedium struct {
	*medium.Memory
	budget int
}

func (t *tornMedium) Write(addr uint16, b byte) error {
	if t.budget <= 0 {
		return nil
	}
	t.budget--
	return t.Memory.Write(addr, b)
}
