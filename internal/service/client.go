package service

import (
	"context"
	"strings"

	"connectrpc.com/connect"
)

func clientOptions(opts []connect.ClientOption) []connect.ClientOption {
	return append([]connect.ClientOption{connect.WithCodec(JSONCodec{})}, opts...)
}

// GroupServiceClient calls GroupService over HTTP.
type GroupServiceClient struct {
	listGroups        *connect.Client[ListGroupsRequest, ListGroupsResponse]
	getGroupMembers   *connect.Client[GetGroupMembersRequest, GetGroupMembersResponse]
	getGroupBalances  *connect.Client[GetGroupBalancesRequest, GetGroupBalancesResponse]
	updateBalances    *connect.Client[UpdateBalancesRequest, UpdateBalancesResponse]
	updateDuePayments *connect.Client[UpdateDuePaymentsRequest, UpdateDuePaymentsResponse]
}

// NewGroupServiceClient creates a client for the server at baseURL.
func NewGroupServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *GroupServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = clientOptions(opts)
	return &GroupServiceClient{
		listGroups: connect.NewClient[ListGroupsRequest, ListGroupsResponse](
			httpClient, baseURL+GroupServiceListGroupsProcedure, opts...),
		getGroupMembers: connect.NewClient[GetGroupMembersRequest, GetGroupMembersResponse](
			httpClient, baseURL+GroupServiceGetGroupMembersProcedure, opts...),
		getGroupBalances: connect.NewClient[GetGroupBalancesRequest, GetGroupBalancesResponse](
			httpClient, baseURL+GroupServiceGetGroupBalancesProcedure, opts...),
		updateBalances: connect.NewClient[UpdateBalancesRequest, UpdateBalancesResponse](
			httpClient, baseURL+GroupServiceUpdateBalancesProcedure, opts...),
		updateDuePayments: connect.NewClient[UpdateDuePaymentsRequest, UpdateDuePaymentsResponse](
			httpClient, baseURL+GroupServiceUpdateDuePaymentsProcedure, opts...),
	}
}

func (c *GroupServiceClient) ListGroups(ctx context.Context, req *connect.Request[ListGroupsRequest]) (*connect.Response[ListGroupsResponse], error) {
	return c.listGroups.CallUnary(ctx, req)
}

func (c *GroupServiceClient) GetGroupMembers(ctx context.Context, req *connect.Request[GetGroupMembersRequest]) (*connect.Response[GetGroupMembersResponse], error) {
	return c.getGroupMembers.CallUnary(ctx, req)
}

func (c *GroupServiceClient) GetGroupBalances(ctx context.Context, req *connect.Request[GetGroupBalancesRequest]) (*connect.Response[GetGroupBalancesResponse], error) {
	return c.getGroupBalances.CallUnary(ctx, req)
}

func (c *GroupServiceClient) UpdateBalances(ctx context.Context, req *connect.Request[UpdateBalancesRequest]) (*connect.Response[UpdateBalancesResponse], error) {
	return c.updateBalances.CallUnary(ctx, req)
}

func (c *GroupServiceClient) UpdateDuePayments(ctx context.Context, req *connect.Request[UpdateDuePaymentsRequest]) (*connect.Response[UpdateDuePaymentsResponse], error) {
	return c.updateDuePayments.CallUnary(ctx, req)
}

// LedgerServiceClient calls LedgerService over HTTP.
type LedgerServiceClient struct {
	recordExpense *connect.Client[RecordExpenseRequest, RecordExpenseResponse]
	recordPayment *connect.Client[RecordPaymentRequest, RecordPaymentResponse]
	listEntries   *connect.Client[ListEntriesRequest, ListEntriesResponse]
}

// NewLedgerServiceClient creates a client for the server at baseURL.
func NewLedgerServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *LedgerServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = clientOptions(opts)
	return &LedgerServiceClient{
		recordExpense: connect.NewClient[RecordExpenseRequest, RecordExpenseResponse](
			httpClient, baseURL+LedgerServiceRecordExpenseProcedure, opts...),
		recordPayment: connect.NewClient[RecordPaymentRequest, RecordPaymentResponse](
			httpClient, baseURL+LedgerServiceRecordPaymentProcedure, opts...),
		listEntries: connect.NewClient[ListEntriesRequest, ListEntriesResponse](
			httpClient, baseURL+LedgerServiceListEntriesProcedure, opts...),
	}
}

func (c *LedgerServiceClient) RecordExpense(ctx context.Context, req *connect.Request[RecordExpenseRequest]) (*connect.Response[RecordExpenseResponse], error) {
	return c.recordExpense.CallUnary(ctx, req)
}

func (c *LedgerServiceClient) RecordPayment(ctx context.Context, req *connect.Request[RecordPaymentRequest]) (*connect.Response[RecordPaymentResponse], error) {
	return c.recordPayment.CallUnary(ctx, req)
}

func (c *LedgerServiceClient) ListEntries(ctx context.Context, req *connect.Request[ListEntriesRequest]) (*connect.Response[ListEntriesResponse], error) {
	return c.listEntries.CallUnary(ctx, req)
}
