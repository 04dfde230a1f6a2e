package handlers

import (
	"io"

	"github.com/slack-go/slack"
)

// SlackClient is the slice of the Slack Web API the handlers use. It is
// satisfied by *slack.Client and by the test fake.
type SlackClient interface {
	PostMessage(channelID string, options ...slack.MsgOption) (string, string, error)
	UpdateMessage(channelID, timestamp string, options ...slack.MsgOption) (string, string, string, error)
	PostEphemeral(channelID, userID string, options ...slack.MsgOption) (string, error)
	OpenView(triggerID string, view slack.ModalViewRequest) (*slack.ViewResponse, error)
	GetFileInfo(fileID string, count, page int) (*slack.File, []slack.Comment, *slack.Paging, error)
	GetFile(downloadURL string, writer io.Writer) error
}

var _ SlackClient = (*slack.Client)(nil)
