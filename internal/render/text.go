package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorAccent = lipgloss.Color("#E5A50A")
	colorMuted  = lipgloss.Color("#8A8A8A")
	colorVoid   = lipgloss.Color("#C01C28")

	styleTitle  = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	styleLabel  = lipgloss.NewStyle().Foreground(colorMuted)
	styleRole   = lipgloss.NewStyle().Bold(true).Width(11)
	styleBranch = lipgloss.NewStyle().Width(5)
	stylePillar = lipgloss.NewStyle().Foreground(colorMuted).Width(8)
	styleVoid   = lipgloss.NewStyle().Foreground(colorVoid)
	styleBox    = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorAccent).
			Padding(0, 1)
)

// Text renders a chart document as a terminal summary: a center box and one
// line per palace.
func Text(doc Document) string {
	var b strings.Builder

	title := "Lá số Tử Vi"
	if doc.Name != "" {
		title += " - " + doc.Name
	}
	center := []string{
		styleTitle.Render(title),
		field("Dương lịch", doc.Birth.Date+" "+doc.Birth.Time+" ("+doc.Birth.Sex+")"),
		field("Âm lịch", doc.Lunar.Date),
		field("Tứ trụ", strings.Join([]string{
			doc.Lunar.YearPillar, doc.Lunar.MonthPillar, doc.Lunar.DayPillar, doc.Lunar.HourPillar,
		}, " / ")),
		field("Bản mệnh", doc.Center.NapAm+" ("+doc.Center.NapAmElement+")"),
		field("Cục", doc.Center.Bureau+" - "+doc.Center.Relation),
		field("Âm dương", doc.Center.Direction),
		field("Chủ mệnh", doc.Center.SelfRuler),
		field("Chủ thân", doc.Center.BodyRuler),
		field("Thân cư", doc.Center.BodyPalace),
		field("Tuần/Triệt", doc.Markers.Tuan+" / "+doc.Markers.Triet),
	}
	b.WriteString(styleBox.Render(strings.Join(center, "\n")))
	b.WriteString("\n")

	for _, p := range doc.Palaces {
		names := make([]string, len(p.Stars))
		for i, s := range p.Stars {
			names[i] = s.Name
		}
		var flags []string
		if p.Body {
			flags = append(flags, "Thân")
		}
		if p.Tuan {
			flags = append(flags, styleVoid.Render("Tuần"))
		}
		if p.Triet {
			flags = append(flags, styleVoid.Render("Triệt"))
		}
		line := styleRole.Render(p.Role) +
			styleBranch.Render(p.Branch) +
			stylePillar.Render(p.Label) +
			fmt.Sprintf("%3s  ", p.Decade) +
			strings.Join(names, ", ")
		if len(flags) > 0 {
			line += "  [" + strings.Join(flags, " ") + "]"
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	if c := doc.Cycles; c != nil {
		b.WriteString(styleTitle.Render(fmt.Sprintf("Tuổi %d / năm %d", c.Age, c.Year)))
		b.WriteString("\n")
		b.WriteString(field("Đại vận", fmt.Sprintf("%s (%d-%d)", c.Decade.Palace, c.Decade.StartAge, c.Decade.EndAge)))
		b.WriteString("\n")
		b.WriteString(field("Tiểu vận", c.MinorBranch+" - "+c.MinorPalace))
		b.WriteString("\n")
		b.WriteString(field("Lưu niên", c.AnnualBranch+" - "+c.AnnualPalace))
		b.WriteString("\n")
	}
	return b.String()
}

// ConversionText renders a calendar conversion.
func ConversionText(c Conversion) string {
	lines := []string{
		field("Dương lịch", c.Solar),
		field("Âm lịch", c.Lunar),
		field("Năm", c.YearPillar+" ("+c.YearNapAm+")"),
		field("Tháng", c.MonthPillar),
		field("Ngày", c.DayPillar),
	}
	if c.HourPillar != "" {
		lines = append(lines, field("Giờ", c.HourPillar))
	}
	if c.LeapMonth > 0 {
		lines = append(lines, field("Tháng nhuận", fmt.Sprint(c.LeapMonth)))
	}
	return strings.Join(lines, "\n") + "\n"
}

func field(label, value string) string {
	return styleLabel.Render(label+":") + " " + value
}
