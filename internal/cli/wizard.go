package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/jungbyungkil/KidsEnglishGuide/internal/cli/formatter"
	"github.com/jungbyungkil/KidsEnglishGuide/internal/planner"
)

// guideHuhTheme returns the huh form theme matching the formatter palette.
func guideHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// searchQuickPicks is the character/topic shortcut list offered before free
// text entry.
var searchQuickPicks = []string{"Bluey", "Peppa Pig", "Dinosaur", "Disney/Pixar", "Pororo"}

const quickPickOther = "기타"

// planCharacters is the preferred-character list for the plan wizard.
var planCharacters = []string{"Bluey", "Peppa Pig", "Disney/Pixar", "Others"}

func validateIntRange(lo, hi int) func(string) error {
	return func(s string) error {
		n, err := strconv.Atoi(s)
		if err != nil {
			return fmt.Errorf("enter a number")
		}
		if n < lo || n > hi {
			return fmt.Errorf("enter a number between %d and %d", lo, hi)
		}
		return nil
	}
}

// runSearchForm collects a query (via quick-pick or free text) and, when
// enrichment is available, whether to generate a summary for the results.
func runSearchForm(enrichAvailable bool, query *string, doEnrich *bool) error {
	options := make([]huh.Option[string], 0, len(searchQuickPicks)+1)
	for _, label := range searchQuickPicks {
		options = append(options, huh.NewOption(label, label))
	}
	options = append(options, huh.NewOption(quickPickOther, quickPickOther))

	var pick string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("검색어 선택").
				Options(options...).
				Value(&pick),
		),
	).WithTheme(guideHuhTheme()).WithShowHelp(false)
	if err := form.Run(); err != nil {
		return err
	}

	if pick == quickPickOther {
		free := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("검색어 입력").
					Placeholder("예: Bluey, Peppa Pig, dinosaur").
					Value(query),
			),
		).WithTheme(guideHuhTheme()).WithShowHelp(false)
		if err := free.Run(); err != nil {
			return err
		}
	} else {
		*query = pick
	}

	if enrichAvailable {
		confirm := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title("상위 검색 결과로 요약 생성?").
					Value(doEnrich),
			),
		).WithTheme(guideHuhTheme()).WithShowHelp(false)
		if err := confirm.Run(); err != nil {
			return err
		}
	}

	return nil
}

// planWizardResult holds the plan inputs collected interactively.
type planWizardResult struct {
	Age               int
	Level             string
	Character         string
	SessionsPerWeek   int
	MinutesPerSession int
}

// runPlanWizard collects weekly plan inputs through a themed form.
func runPlanWizard() (*planWizardResult, error) {
	levelOptions := make([]huh.Option[string], 0, len(planner.Levels))
	for _, lvl := range planner.Levels {
		levelOptions = append(levelOptions, huh.NewOption(lvl, lvl))
	}

	characterOptions := make([]huh.Option[string], 0, len(planCharacters))
	for _, c := range planCharacters {
		characterOptions = append(characterOptions, huh.NewOption(c, c))
	}

	level := planner.FallbackLevel
	character := planCharacters[0]
	ageStr := "7"
	sessionsStr := "4"
	minutesStr := "15"

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("나이 (3–12)").
				Placeholder("7").
				Value(&ageStr).
				Validate(validateIntRange(3, 12)),
			huh.NewSelect[string]().
				Title("레벨 (CEFR)").
				Options(levelOptions...).
				Value(&level),
			huh.NewSelect[string]().
				Title("선호 캐릭터").
				Options(characterOptions...).
				Value(&character),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("주간 학습 횟수 (2–7)").
				Placeholder("4").
				Value(&sessionsStr).
				Validate(validateIntRange(2, 7)),
			huh.NewInput().
				Title("회당 분량(분) (10–30)").
				Placeholder("15").
				Value(&minutesStr).
				Validate(validateIntRange(10, 30)),
		),
	).WithTheme(guideHuhTheme()).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return nil, err
	}

	age, _ := strconv.Atoi(ageStr)
	sessions, _ := strconv.Atoi(sessionsStr)
	minutes, _ := strconv.Atoi(minutesStr)

	return &planWizardResult{
		Age:               age,
		Level:             level,
		Character:         character,
		SessionsPerWeek:   sessions,
		MinutesPerSession: minutes,
	}, nil
}
