package friend

import "fmt"

// Friend is a directed relation; only the outgoing edges of a user scope
// that user's friends ranking view.
type Friend struct {
	FromUserID int64
	ToUserID   int64
}

func (f Friend) Validate() error {
	if f.FromUserID == f.ToUserID {
		return fmt.Errorf("cannot befriend yourself")
	}

	return nil
}
