// Package oddstable prints localized round and battle odds tables.
package oddstable

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/louisbranch/riskodds/internal/battle"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const defaultUnits = 6

var supportedTags = []language.Tag{language.English, language.BrazilianPortuguese}

var tagMatcher = language.NewMatcher(supportedTags)

// Config holds configuration for the odds table tool.
type Config struct {
	Lang string
	// Units bounds both axes of the battle table.
	Units int
	// Preset limits output to one preset. Empty prints every preset.
	Preset string
}

// ParseConfig parses flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	cfg := Config{Lang: "en", Units: defaultUnits}
	fs.StringVar(&cfg.Lang, "lang", cfg.Lang, "output language (en, pt-BR)")
	fs.IntVar(&cfg.Units, "units", cfg.Units, "largest attacker and defender count in the battle table")
	fs.StringVar(&cfg.Preset, "preset", cfg.Preset, "only print this preset")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run writes the tables for cfg to out.
func Run(cfg Config, out io.Writer) error {
	if out == nil {
		return errors.New("output is required")
	}
	if cfg.Units <= 0 {
		return errors.New("units must be greater than zero")
	}
	tag, err := resolveTag(cfg.Lang)
	if err != nil {
		return err
	}

	presets := battle.Presets()
	if strings.TrimSpace(cfg.Preset) != "" {
		preset, err := battle.PresetByName(cfg.Preset)
		if err != nil {
			return err
		}
		presets = []battle.Preset{preset}
	}

	printer := message.NewPrinter(tag)
	calc := battle.NewCalculator()
	for i, preset := range presets {
		if i > 0 {
			fmt.Fprintln(out)
		}
		if err := writeRoundTable(out, printer, calc, preset); err != nil {
			return err
		}
		fmt.Fprintln(out)
		if err := writeBattleTable(out, printer, calc, preset, cfg.Units); err != nil {
			return err
		}
	}
	return nil
}

func resolveTag(value string) (language.Tag, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return language.English, nil
	}
	parsed, err := language.Parse(value)
	if err != nil {
		return language.Tag{}, fmt.Errorf("parse language %q: %w", value, err)
	}
	_, index, _ := tagMatcher.Match(parsed)
	return supportedTags[index], nil
}

func writeRoundTable(out io.Writer, printer *message.Printer, calc *battle.Calculator, preset battle.Preset) error {
	printer.Fprintf(out, keyRoundTitle, preset.Name, bonusLabel(printer, preset.Schedule))
	fmt.Fprintln(out)

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	printer.Fprintf(tw, keyRoundHeader)
	fmt.Fprintln(tw)
	for attackDice := 1; attackDice <= battle.MaxAttackDice; attackDice++ {
		for defenseDice := 1; defenseDice <= battle.MaxDefenseDice; defenseDice++ {
			percentages, err := calc.Percentages(attackDice, defenseDice, preset.Schedule)
			if err != nil {
				return err
			}
			fmt.Fprintf(tw, "%d\t%d\t%s\t%s\t%s\n", attackDice, defenseDice,
				percentages.AttackerWin, percentages.Tie, percentages.DefenderWin)
		}
	}
	return tw.Flush()
}

func writeBattleTable(out io.Writer, printer *message.Printer, calc *battle.Calculator, preset battle.Preset, units int) error {
	printer.Fprintf(out, keyBattleTitle, preset.Name)
	fmt.Fprintln(out)

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
	printer.Fprintf(tw, keyBattleCorner)
	for defenders := 1; defenders <= units; defenders++ {
		fmt.Fprintf(tw, "\t%d", defenders)
	}
	fmt.Fprintln(tw, "\t")
	for attackers := 1; attackers <= units; attackers++ {
		fmt.Fprintf(tw, "%d", attackers)
		for defenders := 1; defenders <= units; defenders++ {
			report, err := calc.Run(attackers, defenders, preset.Schedule)
			if err != nil {
				return err
			}
			fmt.Fprintf(tw, "\t%s/%s", report.AttackerWinPercent, report.AttackerAverageLoss)
		}
		fmt.Fprintln(tw, "\t")
	}
	return tw.Flush()
}

func bonusLabel(printer *message.Printer, schedule battle.BonusSchedule) string {
	normalized := schedule.Normalize()
	if len(normalized) == 0 {
		return printer.Sprintf(keyBonusNone)
	}
	parts := make([]string, len(normalized))
	for i, bonus := range normalized {
		parts[i] = fmt.Sprintf("%+d", bonus)
	}
	return strings.Join(parts, ", ")
}
