// Package service exposes the ledger core over Connect RPC.
//
// Messages are plain Go structs encoded with JSONCodec, so every procedure
// can be called with a JSON POST:
//
//	curl -H 'Content-Type: application/json' \
//	  -d '{"group_id":1,"paid_by":1,"amount":"90"}' \
//	  http://localhost:8080/groupledger.v1.LedgerService/RecordExpense
package service

import (
	"net/http"

	"connectrpc.com/connect"
)

const (
	// GroupServiceName is the fully-qualified name of the group service.
	GroupServiceName = "groupledger.v1.GroupService"
	// LedgerServiceName is the fully-qualified name of the ledger service.
	LedgerServiceName = "groupledger.v1.LedgerService"
)

const (
	GroupServiceListGroupsProcedure        = "/" + GroupServiceName + "/ListGroups"
	GroupServiceGetGroupMembersProcedure   = "/" + GroupServiceName + "/GetGroupMembers"
	GroupServiceGetGroupBalancesProcedure  = "/" + GroupServiceName + "/GetGroupBalances"
	GroupServiceUpdateBalancesProcedure    = "/" + GroupServiceName + "/UpdateBalances"
	GroupServiceUpdateDuePaymentsProcedure = "/" + GroupServiceName + "/UpdateDuePayments"

	LedgerServiceRecordExpenseProcedure = "/" + LedgerServiceName + "/RecordExpense"
	LedgerServiceRecordPaymentProcedure = "/" + LedgerServiceName + "/RecordPayment"
	LedgerServiceListEntriesProcedure   = "/" + LedgerServiceName + "/ListEntries"
)

func handlerOptions(opts []connect.HandlerOption) []connect.HandlerOption {
	return append([]connect.HandlerOption{connect.WithCodec(JSONCodec{})}, opts...)
}

// NewGroupServiceHandler builds an HTTP handler for every GroupService
// procedure. It returns the path to mount the handler on.
func NewGroupServiceHandler(svc *GroupService, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	mux := http.NewServeMux()
	mux.Handle(GroupServiceListGroupsProcedure,
		connect.NewUnaryHandler(GroupServiceListGroupsProcedure, svc.ListGroups, opts...))
	mux.Handle(GroupServiceGetGroupMembersProcedure,
		connect.NewUnaryHandler(GroupServiceGetGroupMembersProcedure, svc.GetGroupMembers, opts...))
	mux.Handle(GroupServiceGetGroupBalancesProcedure,
		connect.NewUnaryHandler(GroupServiceGetGroupBalancesProcedure, svc.GetGroupBalances, opts...))
	mux.Handle(GroupServiceUpdateBalancesProcedure,
		connect.NewUnaryHandler(GroupServiceUpdateBalancesProcedure, svc.UpdateBalances, opts...))
	mux.Handle(GroupServiceUpdateDuePaymentsProcedure,
		connect.NewUnaryHandler(GroupServiceUpdateDuePaymentsProcedure, svc.UpdateDuePayments, opts...))
	return "/" + GroupServiceName + "/", mux
}

// NewLedgerServiceHandler builds an HTTP handler for every LedgerService
// procedure. It returns the path to mount the handler on.
func NewLedgerServiceHandler(svc *LedgerService, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	mux := http.NewServeMux()
	mux.Handle(LedgerServiceRecordExpenseProcedure,
		connect.NewUnaryHandler(LedgerServiceRecordExpenseProcedure, svc.RecordExpense, opts...))
	mux.Handle(LedgerServiceRecordPaymentProcedure,
		connect.NewUnaryHandler(LedgerServiceRecordPaymentProcedure, svc.RecordPayment, opts...))
	mux.Handle(LedgerServiceListEntriesProcedure,
		connect.NewUnaryHandler(LedgerServiceListEntriesProcedure, svc.ListEntries, opts...))
	return "/" + LedgerServiceName + "/", mux
}
