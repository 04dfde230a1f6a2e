package handlers

import (
	"strings"
	"testing"

	"github.com/slack-go/slack"

	"github.com/erikamanning/poker-planning/session"
	"github.com/erikamanning/poker-planning/testutil"
	"github.com/erikamanning/poker-planning/views"
)

func submissionCallback(channelID, userID string, state map[string]map[string]slack.BlockAction) slack.InteractionCallback {
	return slack.InteractionCallback{
		Type: slack.InteractionTypeViewSubmission,
		User: slack.User{ID: userID, Name: "facilitator"},
		View: slack.View{
			CallbackID:      views.CallbackCSVSubmit,
			PrivateMetadata: channelID,
			State:           &slack.ViewState{Values: state},
		},
	}
}

func pastedState(content string) map[string]map[string]slack.BlockAction {
	return map[string]map[string]slack.BlockAction{
		views.BlockCSVInput: {views.ActionCSVContent: {Value: content}},
	}
}

func TestHandleCSVSubmission_PastedContent(t *testing.T) {
	store := session.NewStore()
	client := testutil.NewFakeClient()
	h := New(store, client)

	cb := submissionCallback("C123", "U_FAC", pastedState("Issue key,Summary\nPROJ-1,Fix login bug\nPROJ-2,Add dark mode\n"))
	if resp := h.HandleCSVSubmission(cb); resp != nil {
		t.Fatalf("expected plain ack, got %+v", resp)
	}

	sess, ok := store.GetSessionByChannel("C123")
	if !ok {
		t.Fatal("expected a session in the channel")
	}
	if sess.FacilitatorID != "U_FAC" || len(sess.Tickets) != 2 {
		t.Errorf("unexpected session: facilitator %q, %d tickets", sess.FacilitatorID, len(sess.Tickets))
	}

	msg, ok := client.LastMessage()
	if !ok {
		t.Fatal("expected the first voting message")
	}
	if msg.ChannelID != "C123" || !strings.Contains(msg.Text, "Voting on: PROJ-1") {
		t.Errorf("unexpected voting message: %+v", msg)
	}
	if !strings.Contains(msg.Blocks, "Ticket 1 of 2: PROJ-1") {
		t.Error("voting blocks should show the first ticket")
	}

	if sess.MessageTS != msg.Timestamp {
		t.Errorf("message timestamp not recorded: session %q vs posted %q", sess.MessageTS, msg.Timestamp)
	}
}

func TestHandleCSVSubmission_UploadedFile(t *testing.T) {
	store := session.NewStore()
	client := testutil.NewFakeClient()
	client.Files["F123"] = "Issue key,Summary\nPROJ-9,Uploaded ticket\n"
	h := New(store, client)

	state := map[string]map[string]slack.BlockAction{
		views.BlockCSVFile: {views.ActionCSVFile: {Files: []slack.File{{ID: "F123"}}}},
	}
	if resp := h.HandleCSVSubmission(submissionCallback("C123", "U_FAC", state)); resp != nil {
		t.Fatalf("expected plain ack, got %+v", resp)
	}

	sess, ok := store.GetSessionByChannel("C123")
	if !ok {
		t.Fatal("expected a session from the uploaded file")
	}
	if sess.Tickets[0].Key != "PROJ-9" {
		t.Errorf("unexpected ticket: %+v", sess.Tickets[0])
	}
}

func TestHandleCSVSubmission_EmptySubmission(t *testing.T) {
	store := session.NewStore()
	client := testutil.NewFakeClient()
	h := New(store, client)

	resp := h.HandleCSVSubmission(submissionCallback("C123", "U_FAC", map[string]map[string]slack.BlockAction{}))
	if resp == nil {
		t.Fatal("expected a validation response")
	}
	if resp.Errors[views.BlockCSVInput] == "" {
		t.Errorf("expected an error on the input block, got %+v", resp.Errors)
	}
	if _, ok := store.GetSessionByChannel("C123"); ok {
		t.Error("no session should be created")
	}
}

func TestHandleCSVSubmission_InvalidCSV(t *testing.T) {
	store := session.NewStore()
	client := testutil.NewFakeClient()
	h := New(store, client)

	resp := h.HandleCSVSubmission(submissionCallback("C123", "U_FAC", pastedState("Epic,Points\nFoo,3\n")))
	if resp == nil {
		t.Fatal("expected a validation response")
	}
	if !strings.Contains(resp.Errors[views.BlockCSVInput], "Issue key") {
		t.Errorf("expected column guidance, got %q", resp.Errors[views.BlockCSVInput])
	}
}

func TestHandleCSVSubmission_ChannelRace(t *testing.T) {
	store := session.NewStore()
	client := testutil.NewFakeClient()
	h := New(store, client)

	if _, err := store.CreateSession("C123", "U_FIRST", testutil.ParsedTickets("PROJ-1")); err != nil {
		t.Fatalf("CreateSession failed: %v", err)
	}

	resp := h.HandleCSVSubmission(submissionCallback("C123", "U_SECOND", pastedState("Issue key,Summary\nPROJ-2,Too late\n")))
	if resp == nil {
		t.Fatal("expected a validation response for the lost race")
	}
	if !strings.Contains(resp.Errors[views.BlockCSVInput], "active planning session") {
		t.Errorf("unexpected error: %+v", resp.Errors)
	}

	// The winner's session is untouched
	sess, _ := store.GetSessionByChannel("C123")
	if sess.FacilitatorID != "U_FIRST" {
		t.Error("existing session must not be replaced")
	}
}

func TestHandleCSVSubmission_MissingFile(t *testing.T) {
	store := session.NewStore()
	client := testutil.NewFakeClient()
	h := New(store, client)

	state := map[string]map[string]slack.BlockAction{
		views.BlockCSVFile: {views.ActionCSVFile: {Files: []slack.File{{ID: "F_GONE"}}}},
	}
	resp := h.HandleCSVSubmission(submissionCallback("C123", "U_FAC", state))
	if resp == nil {
		t.Fatal("expected a validation response")
	}
	if !strings.Contains(resp.Errors[views.BlockCSVFile], "Failed to read uploaded file") {
		t.Errorf("unexpected error: %+v", resp.Errors)
	}
}
