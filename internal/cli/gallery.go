package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/ganttring/pkg/chart"
	"github.com/matzehuels/ganttring/pkg/config"
	"github.com/matzehuels/ganttring/pkg/pipeline"
	"github.com/matzehuels/ganttring/pkg/store"
)

// listDimStyle renders the muted parts of the picker.
var listDimStyle = lipgloss.NewStyle().Foreground(colorDim)

// galleryCommand creates the gallery command for browsing stored charts.
func (c *CLI) galleryCommand() *cobra.Command {
	var (
		configPath string
		output     string
		noCache    bool
	)

	cmd := &cobra.Command{
		Use:   "gallery",
		Short: "Browse stored charts and render one",
		Long: `Browse stored charts and render one.

The gallery command lists the charts saved in the configured store and
lets you pick one interactively. The selected chart is rendered to SVG
using its stored options.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGallery(cmd.Context(), configPath, output, noCache)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "config file path (default: ~/.config/ganttring/config.toml)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <chart name>.svg)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}

// runGallery lists stored charts, runs the picker, and renders the selection.
func (c *CLI) runGallery(ctx context.Context, configPath, output string, noCache bool) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	st, err := openStore(ctx, cfg)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close(context.Background())

	docs, err := st.List(ctx)
	if err != nil {
		return fmt.Errorf("list charts: %w", err)
	}
	if len(docs) == 0 {
		printInfo("No stored charts")
		printNextStep("Create one", "curl -X POST localhost:8080/api/charts")
		return nil
	}

	model := NewChartListModel(docs)
	final, err := tea.NewProgram(model, tea.WithContext(ctx)).Run()
	if err != nil {
		return fmt.Errorf("run picker: %w", err)
	}

	m, ok := final.(ChartListModel)
	if !ok || m.Selected == nil {
		return nil
	}
	return c.renderStored(ctx, m.Selected, output, noCache)
}

// renderStored renders a stored chart document to SVG using its saved options.
func (c *CLI) renderStored(ctx context.Context, doc *store.Document, output string, noCache bool) error {
	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts := doc.Options
	opts.CSVPath = ""
	opts.JSONPath = ""
	opts.Sample = false
	opts.Intervals = doc.Intervals
	if opts.Intervals == nil {
		opts.Intervals = []chart.Interval{}
	}
	opts.Formats = []string{pipeline.FormatSVG}
	opts.Logger = c.Logger

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Rendering %s...", doc.Name))
	spinner.Start()

	result, err := runner.Execute(ctx, opts)
	if err != nil {
		spinner.StopWithError("Render failed")
		return fmt.Errorf("render %s: %w", doc.Name, err)
	}
	spinner.Stop()

	path := output
	if path == "" {
		path = safeFileName(doc.Name) + ".svg"
	}
	if err := os.WriteFile(path, result.Artifacts[pipeline.FormatSVG], 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	printSuccess("Rendered %s", doc.Name)
	printFile(path)
	printStats(result.Stats.TaskCount, result.Stats.Layers, result.CacheInfo.RenderHit)
	return nil
}

// safeFileName lowercases the chart name and replaces path-hostile runes.
func safeFileName(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ', r == '/', r == '\\', r == '_':
			b.WriteRune('-')
		}
	}
	if b.Len() == 0 {
		return "chart"
	}
	return b.String()
}

// =============================================================================
// ChartListModel - Interactive chart selection
// =============================================================================

// ChartListModel is the bubbletea model for interactive chart selection.
type ChartListModel struct {
	Docs     []*store.Document
	Cursor   int
	Selected *store.Document
	Height   int
	Offset   int
}

// NewChartListModel creates a new chart list model.
func NewChartListModel(docs []*store.Document) ChartListModel {
	return ChartListModel{
		Docs:   docs,
		Cursor: 0,
		Height: 15,
		Offset: 0,
	}
}

func (m ChartListModel) Init() tea.Cmd {
	return nil
}

func (m ChartListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Docs)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter":
			m.Selected = m.Docs[m.Cursor]
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 6
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m ChartListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Chart"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ render  q quit"))
	b.WriteString("\n\n")

	end := m.Offset + m.Height
	if end > len(m.Docs) {
		end = len(m.Docs)
	}

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		d := m.Docs[i]

		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}

		style := d.Options.Style
		if style == "" {
			style = pipeline.DefaultStyle
		}

		updated := formatRelativeTime(d.UpdatedAt)
		rows = append(rows, []string{
			cursor,
			d.Name,
			fmt.Sprintf("%d", len(d.Intervals)),
			style,
			updated,
			shortID(d.ID),
		})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Chart", "Tasks", "Style", "Updated", "ID").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}

			actualIdx := m.Offset + row
			if actualIdx >= len(m.Docs) {
				return lipgloss.NewStyle()
			}
			isCurrent := actualIdx == m.Cursor

			base := lipgloss.NewStyle()
			if col == 4 || col == 5 {
				base = base.Foreground(colorDim)
			}
			if isCurrent {
				if col == 4 || col == 5 {
					return base.Bold(true)
				}
				return base.Foreground(colorGreen).Bold(true)
			}
			return base
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Docs))))

	return b.String()
}

// =============================================================================
// Helpers
// =============================================================================

// shortID truncates a UUID to its first segment for display.
func shortID(id string) string {
	if i := strings.IndexByte(id, '-'); i > 0 {
		return id[:i]
	}
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func formatRelativeTime(t time.Time) string {
	if t.IsZero() {
		return "—"
	}

	diff := time.Since(t)
	switch {
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	case diff < 7*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(diff.Hours()/24))
	default:
		return t.Format("Jan 2, 2006")
	}
}
