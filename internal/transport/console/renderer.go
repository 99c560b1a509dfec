package console

import (
	"io"
	"strconv"
	"strings"

	"github.com/muesli/termenv"

	"github.com/rocketscienceinc/connectfour/internal/entity"
)

const (
	emptySlot = "⚊"
	separator = "   "
)

// token colours, handed out in order of first appearance
var palette = []string{"#E5534B", "#E5C07B", "#61AFEF", "#98C379"}

// Renderer prints the board and messages to a terminal.
type Renderer struct {
	writer io.Writer
	output *termenv.Output
	colors map[entity.Token]termenv.Color
}

func NewRenderer(w io.Writer, colored bool) *Renderer {
	var opts []termenv.OutputOption
	if !colored {
		opts = append(opts, termenv.WithProfile(termenv.Ascii))
	}

	return &Renderer{
		writer: w,
		output: termenv.NewOutput(w, opts...),
		colors: make(map[entity.Token]termenv.Color),
	}
}

func (that *Renderer) Show(board *entity.Snapshot, message string) {
	var sb strings.Builder

	if board != nil {
		that.writeBoard(&sb, board)
	}

	if message != "" {
		sb.WriteString(message)
		sb.WriteString("\n")
	}

	// nowhere to report a broken terminal
	_, _ = io.WriteString(that.writer, sb.String())
}

func (that *Renderer) writeBoard(sb *strings.Builder, board *entity.Snapshot) {
	header := make([]string, 0, entity.Columns)
	for col := 1; col <= entity.Columns; col++ {
		header = append(header, strconv.Itoa(col))
	}

	sb.WriteString("\n")
	sb.WriteString(strings.Join(header, separator))
	sb.WriteString("\n\n")

	for _, row := range board.Cells {
		cells := make([]string, 0, entity.Columns)
		for _, token := range row {
			cells = append(cells, that.cell(token))
		}

		sb.WriteString(strings.Join(cells, separator))
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
}

func (that *Renderer) cell(token entity.Token) string {
	if token.IsEmpty() {
		return that.output.String(emptySlot).Faint().String()
	}

	return that.output.String(token.String()).Foreground(that.colorFor(token)).Bold().String()
}

func (that *Renderer) colorFor(token entity.Token) termenv.Color {
	color, ok := that.colors[token]
	if !ok {
		color = that.output.Color(palette[len(that.colors)%len(palette)])
		that.colors[token] = color
	}

	return color
}
