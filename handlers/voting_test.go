package handlers

import (
	"strings"
	"testing"

	"github.com/slack-go/slack"

	"github.com/erikamanning/poker-planning/models"
	"github.com/erikamanning/poker-planning/session"
	"github.com/erikamanning/poker-planning/testutil"
)

func TestParseVoteAction(t *testing.T) {
	cases := []struct {
		actionID  string
		dimension models.Dimension
		size      models.Size
		ok        bool
	}{
		{"vote_uncertainty_S", models.DimensionUncertainty, models.SizeSmall, true},
		{"vote_complexity_M", models.DimensionComplexity, models.SizeMedium, true},
		{"vote_effort_L", models.DimensionEffort, models.SizeLarge, true},
		{"vote_velocity_S", "", "", false},
		{"vote_effort_XL", "", "", false},
		{"reveal_results", "", "", false},
		{"vote_effort", "", "", false},
		{"", "", "", false},
	}

	for _, tc := range cases {
		dimension, size, ok := ParseVoteAction(tc.actionID)
		if ok != tc.ok || dimension != tc.dimension || size != tc.size {
			t.Errorf("ParseVoteAction(%q) = (%q, %q, %v), expected (%q, %q, %v)",
				tc.actionID, dimension, size, ok, tc.dimension, tc.size, tc.ok)
		}
	}
}

func voteCallback(userID string) slack.InteractionCallback {
	return slack.InteractionCallback{
		Type: slack.InteractionTypeBlockActions,
		User: slack.User{ID: userID, Name: strings.ToLower(userID)},
	}
}

func TestHandleVoteAction(t *testing.T) {
	store := session.NewStore()
	client := testutil.NewFakeClient()
	h := New(store, client)

	sess, _ := store.CreateSession("C123", "U_FAC", testutil.ParsedTickets("PROJ-1", "PROJ-2"))
	store.SetMessageTS(sess.ID, "1700.0001")

	cast := func(actionID string) {
		h.HandleVoteAction(voteCallback("U_ALICE"), &slack.BlockAction{ActionID: actionID, Value: sess.ID})
	}

	cast("vote_uncertainty_S")
	cast("vote_complexity_S")

	// No points echo until the vote is complete
	if _, ok := client.LastEphemeral(); ok {
		t.Fatal("no ephemeral should be sent for a partial vote")
	}

	cast("vote_effort_S")

	notice, ok := client.LastEphemeral()
	if !ok {
		t.Fatal("expected a points echo after the third dimension")
	}
	if notice.UserID != "U_ALICE" || !strings.Contains(notice.Text, "1 points") {
		t.Errorf("unexpected points echo: %+v", notice)
	}

	// Voting message refreshed with the caller's selections
	update, ok := client.LastUpdate()
	if !ok {
		t.Fatal("expected the voting message to be updated")
	}
	if update.Timestamp != "1700.0001" || !strings.Contains(update.Text, "Voting on: PROJ-1") {
		t.Errorf("unexpected update: %+v", update)
	}
	if !strings.Contains(update.Blocks, "1 vote submitted") {
		t.Error("update should carry the vote counter")
	}

	// The store holds exactly one complete vote
	snap, _ := store.GetSession(sess.ID)
	uv := snap.Tickets[0].Votes["U_ALICE"]
	if uv == nil || uv.Points == nil || *uv.Points != 1 {
		t.Errorf("expected a complete S-S-S vote worth 1 point, got %+v", uv)
	}
}

func TestHandleVoteAction_UnknownSession(t *testing.T) {
	store := session.NewStore()
	client := testutil.NewFakeClient()
	h := New(store, client)

	h.HandleVoteAction(voteCallback("U_ALICE"), &slack.BlockAction{ActionID: "vote_effort_M", Value: "gone"})

	if len(client.Updates) != 0 || len(client.Ephemerals) != 0 {
		t.Error("an unknown session must produce no messages")
	}
}
