package service

import (
	"context"
	"errors"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/groupledger/internal/ledger"
)

// GroupService serves group lookups and balance reports.
type GroupService struct {
	ledger *ledger.Service
}

// NewGroupService creates a new GroupService backed by the ledger core.
func NewGroupService(svc *ledger.Service) *GroupService {
	return &GroupService{ledger: svc}
}

// ListGroups returns all groups.
func (s *GroupService) ListGroups(ctx context.Context, req *connect.Request[ListGroupsRequest]) (*connect.Response[ListGroupsResponse], error) {
	groups, err := s.ledger.ListGroups(ctx)
	if err != nil {
		return nil, toConnectError(err)
	}

	out := make([]Group, len(groups))
	for i, g := range groups {
		out[i] = toGroup(g)
	}
	return connect.NewResponse(&ListGroupsResponse{Groups: out}), nil
}

// GetGroupMembers returns a group's members in order.
func (s *GroupService) GetGroupMembers(ctx context.Context, req *connect.Request[GetGroupMembersRequest]) (*connect.Response[GetGroupMembersResponse], error) {
	slog.DebugContext(ctx, "GetGroupMembers request received", "group_id", req.Msg.GroupID)

	members, err := s.ledger.GetGroupMembers(ctx, req.Msg.GroupID)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&GetGroupMembersResponse{Members: toMembers(members)}), nil
}

// GetGroupBalances reports every member's net balance.
func (s *GroupService) GetGroupBalances(ctx context.Context, req *connect.Request[GetGroupBalancesRequest]) (*connect.Response[GetGroupBalancesResponse], error) {
	groupID := req.Msg.GroupID
	slog.DebugContext(ctx, "GetGroupBalances request received", "group_id", groupID)

	balances, err := s.ledger.GetGroupBalances(ctx, groupID)
	if err != nil {
		return nil, toConnectError(err)
	}

	if balances.NoMembers {
		return connect.NewResponse(&GetGroupBalancesResponse{
			Balances:  []MemberBalance{},
			NoMembers: true,
			Message:   "Group has no members",
		}), nil
	}

	slog.DebugContext(ctx, "GetGroupBalances successful",
		"group_id", groupID,
		"members_count", len(balances.Members),
	)
	return connect.NewResponse(&GetGroupBalancesResponse{
		Balances: toBalances(balances.Members),
	}), nil
}

// UpdateBalances echoes the submitted balances. Nothing is stored.
func (s *GroupService) UpdateBalances(ctx context.Context, req *connect.Request[UpdateBalancesRequest]) (*connect.Response[UpdateBalancesResponse], error) {
	if _, err := s.ledger.GetGroupMembers(ctx, req.Msg.GroupID); err != nil {
		return nil, toConnectError(err)
	}
	if isEmptyPayload(req.Msg.Balances) {
		return nil, connect.NewError(connect.CodeInvalidArgument, errors.New("balances data is required"))
	}
	return connect.NewResponse(&UpdateBalancesResponse{
		Message:  "Balances updated successfully.",
		Balances: req.Msg.Balances,
	}), nil
}

// UpdateDuePayments echoes the submitted payments. Nothing is stored.
func (s *GroupService) UpdateDuePayments(ctx context.Context, req *connect.Request[UpdateDuePaymentsRequest]) (*connect.Response[UpdateDuePaymentsResponse], error) {
	if _, err := s.ledger.GetGroupMembers(ctx, req.Msg.GroupID); err != nil {
		return nil, toConnectError(err)
	}
	if isEmptyPayload(req.Msg.Payments) {
		return nil, connect.NewError(connect.CodeInvalidArgument, errors.New("payments data is required"))
	}
	return connect.NewResponse(&UpdateDuePaymentsResponse{
		Message:  "Due payments updated successfully.",
		Payments: req.Msg.Payments,
	}), nil
}
