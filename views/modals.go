package views

import (
	"github.com/slack-go/slack"
)

// Identifiers shared with the modal submission handler.
const (
	CallbackCSVSubmit = "csv_submit"
	BlockCSVFile      = "csv_file_block"
	BlockCSVInput     = "csv_input_block"
	ActionCSVFile     = "csv_file"
	ActionCSVContent  = "csv_content"
)

// CSVInputModal builds the session-start modal. The channel the command
// came from rides along in private metadata so the submission handler
// knows where to post.
func CSVInputModal(channelID string) slack.ModalViewRequest {
	fileInput := slack.NewFileInputBlockElement(ActionCSVFile).
		WithFileTypes("csv", "text").
		WithMaxFiles(1)
	fileBlock := slack.NewInputBlock(BlockCSVFile, plainText("Upload CSV File"), nil, fileInput)
	fileBlock.Optional = true

	textInput := slack.NewPlainTextInputBlockElement(
		plainText("Issue key,Summary\nPROJ-123,Fix login bug\nPROJ-124,Add dark mode"),
		ActionCSVContent,
	)
	textInput.Multiline = true
	textBlock := slack.NewInputBlock(BlockCSVInput, plainText("CSV Content"), nil, textInput)
	textBlock.Optional = true

	return slack.ModalViewRequest{
		Type:            slack.VTModal,
		CallbackID:      CallbackCSVSubmit,
		PrivateMetadata: channelID,
		Title:           plainText("Start Planning Session"),
		Submit:          plainText("Start Session"),
		Close:           plainText("Cancel"),
		Blocks: slack.Blocks{
			BlockSet: []slack.Block{
				slack.NewSectionBlock(markdown("Upload a Jira CSV export or paste the content below. The CSV should have *Issue key* and *Summary* columns."), nil, nil),
				fileBlock,
				slack.NewDividerBlock(),
				slack.NewContextBlock("", plainText("Or paste CSV content directly:")),
				textBlock,
			},
		},
	}
}
