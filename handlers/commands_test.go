package handlers

import (
	"strings"
	"testing"

	"github.com/slack-go/slack"

	"github.com/erikamanning/poker-planning/session"
	"github.com/erikamanning/poker-planning/testutil"
	"github.com/erikamanning/poker-planning/views"
)

func TestHandlePlanningCommand_OpensModal(t *testing.T) {
	store := session.NewStore()
	client := testutil.NewFakeClient()
	h := New(store, client)

	h.HandlePlanningCommand(slack.SlashCommand{
		Command:   "/planning",
		ChannelID: "C123",
		UserID:    "U_FAC",
		TriggerID: "trigger-1",
	})

	if len(client.OpenedViews) != 1 {
		t.Fatalf("expected one opened modal, got %d", len(client.OpenedViews))
	}
	modal := client.OpenedViews[0]
	if modal.CallbackID != views.CallbackCSVSubmit {
		t.Errorf("unexpected modal callback: %q", modal.CallbackID)
	}
	if modal.PrivateMetadata != "C123" {
		t.Errorf("modal must carry the channel id, got %q", modal.PrivateMetadata)
	}
}

func TestHandlePlanningCommand_ChannelBusy(t *testing.T) {
	store := session.NewStore()
	client := testutil.NewFakeClient()
	h := New(store, client)

	if _, err := store.CreateSession("C123", "U_FAC", testutil.ParsedTickets("PROJ-1")); err != nil {
		t.Fatalf("CreateSession failed: %v", err)
	}

	h.HandlePlanningCommand(slack.SlashCommand{
		Command:   "/planning",
		ChannelID: "C123",
		UserID:    "U_OTHER",
		TriggerID: "trigger-2",
	})

	if len(client.OpenedViews) != 0 {
		t.Error("no modal should open while a session is active")
	}
	notice, ok := client.LastEphemeral()
	if !ok {
		t.Fatal("expected an ephemeral conflict notice")
	}
	if notice.UserID != "U_OTHER" || !strings.Contains(notice.Text, "already an active planning session") {
		t.Errorf("unexpected notice: %+v", notice)
	}
}
