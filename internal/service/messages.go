package service

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mmynk/groupledger/internal/models"
)

// Member is the wire form of models.Member.
type Member struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Group is the wire form of models.Group.
type Group struct {
	ID      int64    `json:"id"`
	Name    string   `json:"name"`
	Members []Member `json:"members"`
}

// MemberBalance is one row of a balance report.
// Negative balance = owed money, positive = owes money.
type MemberBalance struct {
	MemberID   int64           `json:"member_id"`
	MemberName string          `json:"member_name"`
	Balance    decimal.Decimal `json:"balance"`
	TotalPaid  decimal.Decimal `json:"total_paid"`
	TotalShare decimal.Decimal `json:"total_share"`
}

// Entry is the wire form of models.Entry.
type Entry struct {
	ID        int64           `json:"id"`
	Kind      string          `json:"kind"`
	PaidBy    int64           `json:"paid_by"`
	ToMember  int64           `json:"to_member,omitempty"`
	Amount    decimal.Decimal `json:"amount"`
	CreatedAt time.Time       `json:"created_at"`
}

type ListGroupsRequest struct{}

type ListGroupsResponse struct {
	Groups []Group `json:"groups"`
}

type GetGroupMembersRequest struct {
	GroupID int64 `json:"group_id"`
}

type GetGroupMembersResponse struct {
	Members []Member `json:"members"`
}

type GetGroupBalancesRequest struct {
	GroupID int64 `json:"group_id"`
}

// GetGroupBalancesResponse carries either balances or, for a group without
// members, NoMembers with an explanatory message.
type GetGroupBalancesResponse struct {
	Balances  []MemberBalance `json:"balances"`
	NoMembers bool            `json:"no_members,omitempty"`
	Message   string          `json:"message,omitempty"`
}

// UpdateBalancesRequest is accepted and echoed back unchanged.
type UpdateBalancesRequest struct {
	GroupID  int64           `json:"group_id"`
	Balances json.RawMessage `json:"balances"`
}

type UpdateBalancesResponse struct {
	Message  string          `json:"message"`
	Balances json.RawMessage `json:"balances"`
}

// UpdateDuePaymentsRequest is accepted and echoed back unchanged.
type UpdateDuePaymentsRequest struct {
	GroupID  int64           `json:"group_id"`
	Payments json.RawMessage `json:"payments"`
}

type UpdateDuePaymentsResponse struct {
	Message  string          `json:"message"`
	Payments json.RawMessage `json:"payments"`
}

// RecordExpenseRequest uses pointers so absent fields can be told apart from
// zero values. Amount accepts a JSON number or a decimal string.
type RecordExpenseRequest struct {
	GroupID *int64           `json:"group_id"`
	PaidBy  *int64           `json:"paid_by"`
	Amount  *decimal.Decimal `json:"amount"`
}

type RecordExpenseResponse struct {
	Message string `json:"message"`
	Entry   Entry  `json:"entry"`
}

type RecordPaymentRequest struct {
	GroupID    *int64           `json:"group_id"`
	FromMember *int64           `json:"from_member"`
	ToMember   *int64           `json:"to_member"`
	Amount     *decimal.Decimal `json:"amount"`
}

type RecordPaymentResponse struct {
	Message string `json:"message"`
	Entry   Entry  `json:"entry"`
}

type ListEntriesRequest struct {
	GroupID int64 `json:"group_id"`
}

type ListEntriesResponse struct {
	Entries []Entry `json:"entries"`
}

func toMembers(members []models.Member) []Member {
	out := make([]Member, len(members))
	for i, m := range members {
		out[i] = Member{ID: m.ID, Name: m.Name}
	}
	return out
}

func toGroup(g models.Group) Group {
	return Group{ID: g.ID, Name: g.Name, Members: toMembers(g.Members)}
}

func toEntry(e *models.Entry) Entry {
	return Entry{
		ID:        e.ID,
		Kind:      string(e.Kind),
		PaidBy:    e.PaidBy,
		ToMember:  e.ToMember,
		Amount:    e.Amount,
		CreatedAt: e.CreatedAt,
	}
}

func toBalances(balances []models.MemberBalance) []MemberBalance {
	out := make([]MemberBalance, len(balances))
	for i, b := range balances {
		out[i] = MemberBalance{
			MemberID:   b.MemberID,
			MemberName: b.MemberName,
			Balance:    b.Balance,
			TotalPaid:  b.TotalPaid,
			TotalShare: b.TotalShare,
		}
	}
	return out
}
