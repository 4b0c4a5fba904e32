package avatar

import (
	"crypto/md5" // #nosec G501 gravatar identifies avatars by MD5
	"encoding/hex"

	"github.com/m-mizutani/livegit/pkg/domain/interfaces"
)

// Gravatar computes the gravatar hash of a normalized email.
type Gravatar struct{}

var _ interfaces.Hasher = (*Gravatar)(nil)

func New() *Gravatar {
	return &Gravatar{}
}

func (x *Gravatar) Hash(s string) string {
	sum := md5.Sum([]byte(s)) // #nosec G401
	return hex.EncodeToString(sum[:])
}
