package service

import (
	"bytes"
	"encoding/json"
	"errors"

	"connectrpc.com/connect"

	"github.com/mmynk/groupledger/internal/ledger"
)

// toConnectError maps core errors to Connect codes:
// not found -> not_found (404), validation -> invalid_argument (400),
// anything else -> internal (500).
func toConnectError(err error) *connect.Error {
	switch {
	case errors.Is(err, ledger.ErrNotFound):
		return connect.NewError(connect.CodeNotFound, err)
	case errors.Is(err, ledger.ErrMemberNotInGroup), ledger.IsValidation(err):
		return connect.NewError(connect.CodeInvalidArgument, err)
	default:
		return connect.NewError(connect.CodeInternal, err)
	}
}

// isEmptyPayload reports whether a raw JSON value is absent or empty.
func isEmptyPayload(raw json.RawMessage) bool {
	switch string(bytes.TrimSpace(raw)) {
	case "", "null", "[]", "{}", `""`, "false", "0":
		return true
	}
	return false
}
