package balance

import (
	"math"
	"testing"

	"github.com/ejifeanyi/obito/internal/models"
)

func testMembers(ids ...string) []models.Member {
	members := make([]models.Member, 0, len(ids))
	for _, id := range ids {
		members = append(members, models.Member{ID: id, Name: id})
	}
	return members
}

func TestCompute(t *testing.T) {
	tests := []struct {
		name         string
		members      []models.Member
		expenses     []models.Expense
		validateFunc func(t *testing.T, balances map[string]*models.Balance)
	}{
		{
			name:    "payments and shares aggregate into nets",
			members: testMembers("alice", "bob", "carol"),
			expenses: []models.Expense{
				{
					PayerID: "bob", Amount: 60.0,
					Shares: []models.Share{
						{MemberID: "alice", Amount: 20.0},
						{MemberID: "bob", Amount: 20.0},
						{MemberID: "carol", Amount: 20.0},
					},
				},
				{
					PayerID: "alice", Amount: 30.0,
					Shares: []models.Share{
						{MemberID: "alice", Amount: 10.0},
						{MemberID: "bob", Amount: 10.0},
						{MemberID: "carol", Amount: 10.0},
					},
				},
			},
			validateFunc: func(t *testing.T, balances map[string]*models.Balance) {
				// Alice: paid 30, owed 30, net 0
				// Bob: paid 60, owed 30, net +30
				// Carol: paid 0, owed 30, net -30
				alice := balances["alice"]
				if math.Abs(alice.Paid-30.0) > 0.01 {
					t.Errorf("alice paid = %v, want 30.0", alice.Paid)
				}
				if math.Abs(alice.Owed-30.0) > 0.01 {
					t.Errorf("alice owed = %v, want 30.0", alice.Owed)
				}
				if math.Abs(alice.Net) > 0.01 {
					t.Errorf("alice net = %v, want 0.0", alice.Net)
				}

				bob := balances["bob"]
				if math.Abs(bob.Net-30.0) > 0.01 {
					t.Errorf("bob net = %v, want 30.0", bob.Net)
				}

				carol := balances["carol"]
				if math.Abs(carol.Net+30.0) > 0.01 {
					t.Errorf("carol net = %v, want -30.0", carol.Net)
				}
			},
		},
		{
			name:     "no expenses yields zero balances for every member",
			members:  testMembers("alice", "bob", "carol"),
			expenses: nil,
			validateFunc: func(t *testing.T, balances map[string]*models.Balance) {
				if len(balances) != 3 {
					t.Fatalf("len(balances) = %d, want 3", len(balances))
				}
				for id, b := range balances {
					if b.Paid != 0 || b.Owed != 0 || b.Net != 0 {
						t.Errorf("%s balance = %+v, want all zero", id, b)
					}
				}
			},
		},
		{
			name:    "unknown payer and share members are skipped",
			members: testMembers("alice", "bob"),
			expenses: []models.Expense{
				{
					PayerID: "ghost", Amount: 50.0,
					Shares: []models.Share{
						{MemberID: "ghost", Amount: 25.0},
						{MemberID: "alice", Amount: 25.0},
					},
				},
			},
			validateFunc: func(t *testing.T, balances map[string]*models.Balance) {
				if _, ok := balances["ghost"]; ok {
					t.Error("balances contains ghost, want members only")
				}
				if math.Abs(balances["alice"].Owed-25.0) > 0.01 {
					t.Errorf("alice owed = %v, want 25.0", balances["alice"].Owed)
				}
				if balances["bob"].Paid != 0 || balances["bob"].Owed != 0 {
					t.Errorf("bob balance = %+v, want zero", balances["bob"])
				}
			},
		},
		{
			name:    "uneven three-way split nets sum to zero",
			members: testMembers("alice", "bob", "carol"),
			expenses: []models.Expense{
				{
					PayerID: "alice", Amount: 100.0,
					Shares: []models.Share{
						{MemberID: "alice", Amount: 33.33},
						{MemberID: "bob", Amount: 33.33},
						{MemberID: "carol", Amount: 33.34},
					},
				},
			},
			validateFunc: func(t *testing.T, balances map[string]*models.Balance) {
				if math.Abs(balances["alice"].Net-66.67) > 0.01 {
					t.Errorf("alice net = %v, want 66.67", balances["alice"].Net)
				}
				if math.Abs(balances["carol"].Net+33.34) > 0.01 {
					t.Errorf("carol net = %v, want -33.34", balances["carol"].Net)
				}
				var sum float64
				for _, b := range balances {
					sum += b.Net
				}
				if math.Abs(sum) > 0.01 {
					t.Errorf("sum of nets = %v, want 0", sum)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			balances := Compute(tt.members, tt.expenses)
			tt.validateFunc(t, balances)
		})
	}
}

func TestComputeIdempotent(t *testing.T) {
	members := testMembers("alice", "bob")
	expenses := []models.Expense{
		{
			PayerID: "alice", Amount: 10.0,
			Shares: []models.Share{
				{MemberID: "alice", Amount: 3.33},
				{MemberID: "bob", Amount: 6.67},
			},
		},
	}

	first := Compute(members, expenses)
	second := Compute(members, expenses)

	if len(first) != len(second) {
		t.Fatalf("repeated calls differ in size: %d vs %d", len(first), len(second))
	}
	for id, b := range first {
		other := second[id]
		if other == nil || *b != *other {
			t.Errorf("%s balance differs between calls: %+v vs %+v", id, b, other)
		}
	}
}

func TestRank(t *testing.T) {
	members := testMembers("alice", "bob", "carol")
	expenses := []models.Expense{
		{
			PayerID: "bob", Amount: 60.0,
			Shares: []models.Share{
				{MemberID: "alice", Amount: 20.0},
				{MemberID: "bob", Amount: 20.0},
				{MemberID: "carol", Amount: 20.0},
			},
		},
		{
			PayerID: "alice", Amount: 30.0,
			Shares: []models.Share{
				{MemberID: "alice", Amount: 10.0},
				{MemberID: "bob", Amount: 10.0},
				{MemberID: "carol", Amount: 10.0},
			},
		},
	}

	ranked := Rank(members, Compute(members, expenses))

	want := []string{"bob", "alice", "carol"}
	if len(ranked) != len(want) {
		t.Fatalf("len(ranked) = %d, want %d", len(ranked), len(want))
	}
	for i, id := range want {
		if ranked[i].MemberID != id {
			t.Errorf("ranked[%d] = %s, want %s", i, ranked[i].MemberID, id)
		}
	}
}

func TestRankTiesKeepMemberOrder(t *testing.T) {
	members := testMembers("carol", "alice", "bob")
	balances := map[string]*models.Balance{
		"alice": {MemberID: "alice", Net: 10.0},
		"bob":   {MemberID: "bob", Net: 10.0},
		"carol": {MemberID: "carol", Net: 10.0},
	}

	ranked := Rank(members, balances)

	want := []string{"carol", "alice", "bob"}
	for i, id := range want {
		if ranked[i].MemberID != id {
			t.Errorf("ranked[%d] = %s, want %s", i, ranked[i].MemberID, id)
		}
	}
}

func TestRound2(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"whole number unchanged", 1.0, 1.0},
		{"half cent rounds up", 0.005, 0.01},
		{"negative half cent rounds toward zero", -0.005, 0.0},
		{"float product landing on the half rounds up", 2.675, 2.68},
		{"float product below the half stays down", 2.6749, 2.67},
		{"repeating fraction rounds up", 2.0 / 3.0 * 100, 66.67},
		{"negative repeating fraction", -1.0 / 3.0 * 100, -33.33},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := round2(tt.in); got != tt.want {
				t.Errorf("round2(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
