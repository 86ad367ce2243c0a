package main

import (
	"strconv"
	"strings"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"github.com/luca-patrignani/hand-scorer/application"
	"github.com/luca-patrignani/hand-scorer/domain/poker"
)

func bannerText() (string, error) {
	return pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("H", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("and ", pterm.FgDarkGray.ToStyle()),
		putils.LettersFromStringWithStyle("S", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("corer", pterm.FgDarkGray.ToStyle()),
	).Srender()
}

func cardsString(h poker.Hand) string {
	cards := h.Cards()
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, " - ")
}

func evaluationPanel(ev poker.Evaluation) string {
	pbox := pterm.DefaultBox.WithHorizontalPadding(4).WithTopPadding(1).WithBottomPadding(1)
	title := pterm.LightYellow("|" + strings.ToUpper(ev.Category.String()) + "|")
	return pbox.WithTitle(title).WithTitleTopCenter().Sprintf(
		"%s\n%s\nBase value: %d\nTie-break: %d\nFinal score: %s\n",
		pterm.BgGreen.Sprint(" "+cardsString(ev.Hand)+" "),
		ev.Description,
		int(ev.Score)-ev.TieBreak,
		ev.TieBreak,
		pterm.LightGreen(strconv.Itoa(int(ev.Score))),
	)
}

// resultsTableData lays out one row per outcome. Winners are starred and
// invalid hands show their error in place of the category.
func resultsTableData(outcomes []application.Outcome) pterm.TableData {
	data := pterm.TableData{{"", "Name", "Cards", "Category", "Score"}}
	for _, o := range outcomes {
		mark := ""
		if o.Winner {
			mark = "*"
		}
		if o.Err != nil {
			data = append(data, []string{mark, o.Name, strings.Join(o.Cards, " "), o.Err.Error(), "-"})
			continue
		}
		ev := o.Evaluation
		data = append(data, []string{
			mark,
			o.Name,
			strings.Join(ev.Hand.Codes(), " "),
			ev.Category.String(),
			strconv.Itoa(int(ev.Score)),
		})
	}
	return data
}

func resultsTable(outcomes []application.Outcome) (string, error) {
	return pterm.DefaultTable.WithHasHeader().WithData(resultsTableData(outcomes)).Srender()
}
