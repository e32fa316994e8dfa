package translate

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// HandleJSON decodes a Request from body, handles it and encodes the Response.
// Malformed bodies yield a bad_request Response rather than an error, so broker
// callers always have something to reply with.
func (s *Service) HandleJSON(ctx context.Context, body []byte) []byte {
	var req Request
	var resp Response
	if err := json.Unmarshal(body, &req); err != nil {
		resp = Response{ID: uuid.NewString()}
		s.fail(&resp, KindBadRequest, fmt.Errorf("decode request: %w", err))
	} else {
		resp = s.Handle(ctx, req)
	}

	out, _ := json.Marshal(resp)
	return out
}
