package export

import (
	"bufio"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"gopkg.in/yaml.v3"
)

// Write encodes doc to w in format f.
func Write(w io.Writer, f Format, doc Document) error {
	switch f {
	case Text:
		return writeText(w, doc)
	case Table:
		return writeTable(w, doc)
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	case Binary:
		return WriteBinary(w, doc.Buffer)
	default:
		return fmt.Errorf("%w %q", ErrUnknownFormat, f)
	}
}

// WriteBinary writes buf as little-endian IEEE-754 float32 values.
func WriteBinary(w io.Writer, buf []float32) error {
	return binary.Write(w, binary.LittleEndian, buf)
}

// ReadBinary decodes a buffer written by WriteBinary.
func ReadBinary(r io.Reader) ([]float32, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read buffer: %w", err)
	}
	if len(raw)%4 != 0 {
		return nil, fmt.Errorf("%d bytes: %w", len(raw), ErrTruncatedBuffer)
	}
	buf := make([]float32, len(raw)/4)
	if _, err := binary.Decode(raw, binary.LittleEndian, buf); err != nil {
		return nil, fmt.Errorf("decode buffer: %w", err)
	}
	return buf, nil
}

func formatFloat(v float32) string {
	return strconv.FormatFloat(float64(v), 'g', -1, 32)
}

func formatStat(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func writeText(w io.Writer, doc Document) error {
	bw := bufio.NewWriter(w)
	for _, r := range doc.Rects {
		fmt.Fprintf(bw, "%s %s %s %s\n", formatFloat(r.X), formatFloat(r.Y), formatFloat(r.Width), formatFloat(r.Height))
	}
	if s := doc.Summary; s != nil {
		fmt.Fprintf(bw, "# bounds %s,%s -> %s,%s\n",
			formatStat(s.Bounds.MinX), formatStat(s.Bounds.MinY), formatStat(s.Bounds.MaxX), formatStat(s.Bounds.MaxY))
		fmt.Fprintf(bw, "# width %s±%s height %s±%s area %s\n",
			formatStat(s.MeanWidth), formatStat(s.StdWidth), formatStat(s.MeanHeight), formatStat(s.StdHeight), formatStat(s.TotalArea))
	}
	return bw.Flush()
}

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
var cellStyle = lipgloss.NewStyle().Padding(0, 1).Align(lipgloss.Right)

func writeTable(w io.Writer, doc Document) error {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("#", "x", "y", "width", "height").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	for i, r := range doc.Rects {
		t.Row(strconv.Itoa(i), formatFloat(r.X), formatFloat(r.Y), formatFloat(r.Width), formatFloat(r.Height))
	}
	if _, err := fmt.Fprintln(w, t.Render()); err != nil {
		return err
	}

	if s := doc.Summary; s != nil {
		st := table.New().
			Border(lipgloss.NormalBorder()).
			Headers("stat", "value").
			StyleFunc(func(row, _ int) lipgloss.Style {
				if row == table.HeaderRow {
					return headerStyle
				}
				return cellStyle
			}).
			Row("bounds", fmt.Sprintf("%s,%s -> %s,%s",
				formatStat(s.Bounds.MinX), formatStat(s.Bounds.MinY), formatStat(s.Bounds.MaxX), formatStat(s.Bounds.MaxY))).
			Row("mean width", formatStat(s.MeanWidth)).
			Row("mean height", formatStat(s.MeanHeight)).
			Row("total area", formatStat(s.TotalArea))
		if _, err := fmt.Fprintln(w, st.Render()); err != nil {
			return err
		}
	}
	return nil
}
