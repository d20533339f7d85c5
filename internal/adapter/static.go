package adapter

import "context"

type staticAccountStatusSource struct {
	accountID *string
}

// NewStaticAccountStatusSource returns a source that always reports
// accountID. A blank accountID reports that no account is signed in.
func NewStaticAccountStatusSource(accountID string) AccountStatusSource {
	return &staticAccountStatusSource{accountID: normalizeAccountID(&accountID)}
}

func (s *staticAccountStatusSource) CurrentAccountID(ctx context.Context, containerID string) (*string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.accountID == nil {
		return nil, nil
	}
	id := *s.accountID
	return &id, nil
}
