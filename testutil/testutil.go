package testutil

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/slack-go/slack"

	"github.com/erikamanning/poker-planning/models"
)

// PostedMessage is one recorded PostMessage or UpdateMessage call, with the
// rendered text and block JSON for assertions.
type PostedMessage struct {
	ChannelID string
	Timestamp string
	Text      string
	Blocks    string
}

// EphemeralMessage is one recorded PostEphemeral call.
type EphemeralMessage struct {
	ChannelID string
	UserID    string
	Text      string
}

// FakeClient implements the handlers' SlackClient interface in memory.
// Every call is recorded; message options are flattened into their encoded
// form so tests can assert on text and block content.
type FakeClient struct {
	mu sync.Mutex

	Messages    []PostedMessage
	Updates     []PostedMessage
	Ephemerals  []EphemeralMessage
	OpenedViews []slack.ModalViewRequest

	// Files maps a file id to its downloadable content.
	Files map[string]string

	nextTS int
}

// NewFakeClient creates an empty fake.
func NewFakeClient() *FakeClient {
	return &FakeClient{Files: make(map[string]string)}
}

func (c *FakeClient) PostMessage(channelID string, options ...slack.MsgOption) (string, string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	msg, err := c.record(channelID, options)
	if err != nil {
		return "", "", err
	}
	c.Messages = append(c.Messages, msg)
	return channelID, msg.Timestamp, nil
}

func (c *FakeClient) UpdateMessage(channelID, timestamp string, options ...slack.MsgOption) (string, string, string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	msg, err := c.record(channelID, options)
	if err != nil {
		return "", "", "", err
	}
	msg.Timestamp = timestamp
	c.Updates = append(c.Updates, msg)
	return channelID, timestamp, msg.Text, nil
}

func (c *FakeClient) PostEphemeral(channelID, userID string, options ...slack.MsgOption) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	msg, err := c.record(channelID, options)
	if err != nil {
		return "", err
	}
	c.Ephemerals = append(c.Ephemerals, EphemeralMessage{
		ChannelID: channelID,
		UserID:    userID,
		Text:      msg.Text,
	})
	return msg.Timestamp, nil
}

func (c *FakeClient) OpenView(triggerID string, view slack.ModalViewRequest) (*slack.ViewResponse, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.OpenedViews = append(c.OpenedViews, view)
	return &slack.ViewResponse{}, nil
}

func (c *FakeClient) GetFileInfo(fileID string, count, page int) (*slack.File, []slack.Comment, *slack.Paging, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.Files[fileID]; !ok {
		return nil, nil, nil, errors.New("file_not_found")
	}
	return &slack.File{ID: fileID, URLPrivateDownload: "https://files.test/" + fileID}, nil, nil, nil
}

func (c *FakeClient) GetFile(downloadURL string, writer io.Writer) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	fileID := strings.TrimPrefix(downloadURL, "https://files.test/")
	content, ok := c.Files[fileID]
	if !ok {
		return errors.New("file_not_found")
	}
	_, err := io.WriteString(writer, content)
	return err
}

// record flattens message options into their encoded request form. The
// caller must hold the mutex.
func (c *FakeClient) record(channelID string, options []slack.MsgOption) (PostedMessage, error) {
	_, values, err := slack.UnsafeApplyMsgOptions("xoxb-test", channelID, "https://slack.test/api/", options...)
	if err != nil {
		return PostedMessage{}, err
	}

	c.nextTS++
	return PostedMessage{
		ChannelID: channelID,
		Timestamp: fmt.Sprintf("1700000000.%06d", c.nextTS),
		Text:      values.Get("text"),
		Blocks:    values.Get("blocks"),
	}, nil
}

// LastMessage returns the most recent PostMessage call.
func (c *FakeClient) LastMessage() (PostedMessage, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.Messages) == 0 {
		return PostedMessage{}, false
	}
	return c.Messages[len(c.Messages)-1], true
}

// LastUpdate returns the most recent UpdateMessage call.
func (c *FakeClient) LastUpdate() (PostedMessage, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.Updates) == 0 {
		return PostedMessage{}, false
	}
	return c.Updates[len(c.Updates)-1], true
}

// LastEphemeral returns the most recent PostEphemeral call.
func (c *FakeClient) LastEphemeral() (EphemeralMessage, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.Ephemerals) == 0 {
		return EphemeralMessage{}, false
	}
	return c.Ephemerals[len(c.Ephemerals)-1], true
}

// ParsedTickets builds a small fixture ticket list.
func ParsedTickets(keys ...string) []models.ParsedTicket {
	tickets := make([]models.ParsedTicket, len(keys))
	for i, key := range keys {
		tickets[i] = models.ParsedTicket{Key: key, Summary: "Summary for " + key}
	}
	return tickets
}
