package fieldmatch

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/fieldmatch/internal/version"
	"github.com/arthur-debert/fieldmatch/pkg/codec"
	"github.com/arthur-debert/fieldmatch/pkg/config"
	"github.com/arthur-debert/fieldmatch/pkg/displayname"
	"github.com/arthur-debert/fieldmatch/pkg/editor"
	"github.com/arthur-debert/fieldmatch/pkg/errors"
	"github.com/arthur-debert/fieldmatch/pkg/logging"
	"github.com/arthur-debert/fieldmatch/pkg/matchers"
	"github.com/arthur-debert/fieldmatch/pkg/overrides"
	"github.com/arthur-debert/fieldmatch/pkg/style"
	"github.com/arthur-debert/fieldmatch/pkg/types"
)

func newMatchersCmd(a *app) *cobra.Command {
	var frame bool

	cmd := &cobra.Command{
		Use:   "matchers",
		Short: MsgMatchersShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var rows [][]string

			if frame {
				for _, info := range a.registry.FrameMatchers() {
					rows = append(rows, []string{
						style.MatcherIDStyle.Render(info.ID),
						info.Name,
						info.Description,
						info.OptionsDisplayText(info.DefaultOptions),
					})
				}
				fmt.Fprintln(cmd.OutOrStdout(), style.Table([]string{"ID", "NAME", "DESCRIPTION", "DEFAULT"}, rows))
				return nil
			}

			catalog, err := editor.NewCatalog(a.registry)
			if err != nil {
				return err
			}
			for _, item := range catalog.Items() {
				picker := MsgYes
				if item.ExcludeFromPicker {
					picker = style.MutedStyle.Render(MsgNo)
				}
				rows = append(rows, []string{
					style.MatcherIDStyle.Render(item.ID),
					item.Name,
					item.Description,
					item.Matcher.OptionsDisplayText(item.Matcher.DefaultOptions),
					picker,
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), style.Table([]string{"ID", "NAME", "DESCRIPTION", "DEFAULT", "PICKER"}, rows))
			return nil
		},
	}

	cmd.Flags().BoolVar(&frame, "frame", false, MsgFlagFrameMatcher)
	return cmd
}

func newMatchCmd(a *app) *cobra.Command {
	var framesPath, id, options, framePattern string

	cmd := &cobra.Command{
		Use:     "match",
		Short:   MsgMatchShort,
		Example: MsgMatchExample,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := required(map[string]string{"frames": framesPath, "id": id}); err != nil {
				return err
			}

			frames, err := codec.ReadFrames(framesPath)
			if err != nil {
				return err
			}

			m, err := a.registry.GetFieldMatcher(types.MatcherConfig{ID: id, Options: parseOptions(options)})
			if err != nil {
				return err
			}

			var frameMatcher matchers.FrameMatcher
			if framePattern != "" {
				frameMatcher, err = a.registry.GetFrameMatcher(types.MatcherConfig{
					ID:      matchers.FrameByNameID,
					Options: framePattern,
				})
				if err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()
			count := 0
			for i, frame := range frames {
				if frame == nil || (frameMatcher != nil && !frameMatcher.Match(frame)) {
					continue
				}
				for j, field := range frame.Fields {
					if field != nil && m.Match(field, frame, frames) {
						fmt.Fprintf(out, MsgMatchLine, i, j, displayname.Get(field, frame, frames))
						count++
					}
				}
			}
			if count == 0 {
				fmt.Fprintln(out, style.MutedStyle.Render(MsgNoMatches))
			}

			logger := logging.GetLogger("cli")
			logger.Info().Str("matcher", id).Int("matches", count).Msg("match finished")
			return nil
		},
	}

	cmd.Flags().StringVar(&framesPath, "frames", "", MsgFlagFrames)
	cmd.Flags().StringVar(&id, "id", "", MsgFlagID)
	cmd.Flags().StringVar(&options, "options", "", MsgFlagOptions)
	cmd.Flags().StringVar(&framePattern, "frame-pattern", "", MsgFlagFramePattern)
	return cmd
}

func newHideCmd(a *app) *cobra.Command {
	var configPath, framesPath, mode, out string
	var frameIndex, fieldIndex int

	cmd := &cobra.Command{
		Use:     "hide",
		Short:   MsgHideShort,
		Long:    MsgHideLong,
		Example: MsgHideExample,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := required(map[string]string{"config": configPath, "frames": framesPath}); err != nil {
				return err
			}
			if err := nonNegative(cmd, "frame", frameIndex); err != nil {
				return err
			}
			if err := nonNegative(cmd, "field", fieldIndex); err != nil {
				return err
			}

			legendMode := a.cfg.LegendMode()
			if cmd.Flags().Changed("mode") {
				parsed, ok := types.ParseLegendEventMode(mode)
				if !ok {
					return errors.Newf(errors.ErrInvalidInput, MsgUnknownMode, mode)
				}
				legendMode = parsed
			}

			source, err := readFieldConfigOrEmpty(configPath)
			if err != nil {
				return err
			}
			frames, err := codec.ReadFrames(framesPath)
			if err != nil {
				return err
			}

			event := types.LegendEvent{
				FieldIndex: types.FieldIndex{FrameIndex: frameIndex, FieldIndex: fieldIndex},
				Mode:       legendMode,
			}
			result := overrides.HideSeriesConfigFactory(event, source, frames)

			if out != "" {
				if err := codec.WriteFieldConfig(out, result); err != nil {
					return err
				}
				fmt.Fprint(cmd.ErrOrStderr(), style.Render(fmt.Sprintf(MsgDocumentSaved, out)))
				return nil
			}
			return a.printFieldConfig(cmd, result)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", MsgFlagConfig)
	cmd.Flags().StringVar(&framesPath, "frames", "", MsgFlagFrames)
	cmd.Flags().IntVar(&frameIndex, "frame", -1, MsgFlagFrame)
	cmd.Flags().IntVar(&fieldIndex, "field", -1, MsgFlagField)
	cmd.Flags().StringVar(&mode, "mode", "", MsgFlagMode)
	cmd.Flags().StringVar(&out, "out", "", MsgFlagOut)
	return cmd
}

func newApplyCmd(a *app) *cobra.Command {
	var configPath, framesPath string
	var document bool

	cmd := &cobra.Command{
		Use:   "apply",
		Short: MsgApplyShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := required(map[string]string{"config": configPath, "frames": framesPath}); err != nil {
				return err
			}

			source, err := codec.ReadFieldConfig(configPath)
			if err != nil {
				return err
			}
			frames, err := codec.ReadFrames(framesPath)
			if err != nil {
				return err
			}

			results, err := overrides.Apply(a.registry, source, frames)
			if err != nil {
				return err
			}

			if document {
				return a.printDocument(cmd, results)
			}

			var rows [][]string
			for _, r := range results {
				hidden := ""
				if r.HiddenFromGraph() {
					hidden = style.HiddenIndicator()
				}
				rows = append(rows, []string{
					strconv.Itoa(r.FrameIndex),
					strconv.Itoa(r.FieldIndex),
					r.DisplayName,
					hidden,
					formatProperties(r.Properties),
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), style.Table([]string{"FRAME", "FIELD", "NAME", "HIDDEN", "PROPERTIES"}, rows))
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", MsgFlagConfig)
	cmd.Flags().StringVar(&framesPath, "frames", "", MsgFlagFrames)
	cmd.Flags().BoolVar(&document, "document", false, MsgFlagDocument)
	return cmd
}

func newRulesCmd(a *app) *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "rules",
		Short: MsgRulesShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := required(map[string]string{"config": configPath}); err != nil {
				return err
			}

			source, err := codec.ReadFieldConfig(configPath)
			if err != nil {
				return err
			}
			if len(source.Overrides) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), style.MutedStyle.Render(MsgNoRules))
				return nil
			}

			catalog, err := editor.NewCatalog(a.registry)
			if err != nil {
				return err
			}

			var rows [][]string
			for i, rule := range source.Overrides {
				kind := style.UserRuleStyle.Render(MsgUserRule)
				if rule.IsSystem() {
					kind = style.SystemRuleStyle.Render(MsgSystemRule + " " + rule.SystemRef)
				}

				view, err := catalog.Describe(rule.Matcher)
				if err != nil {
					view = editor.EditorView{MatcherID: rule.Matcher.ID, Label: style.ErrorStyle.Render(err.Error())}
				}
				readOnly := MsgNo
				if view.ReadOnly {
					readOnly = MsgYes
				}

				rows = append(rows, []string{
					strconv.Itoa(i),
					kind,
					style.MatcherIDStyle.Render(view.MatcherID),
					view.Label,
					a.registry.FieldOptionsDisplayText(rule.Matcher),
					readOnly,
					formatProperties(rule.Properties),
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), style.Table(
				[]string{"#", "KIND", "MATCHER", "LABEL", "DISPLAY", "READ ONLY", "PROPERTIES"}, rows))
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", MsgFlagConfig)
	return cmd
}

func newGenConfigCmd() *cobra.Command {
	var write bool

	cmd := &cobra.Command{
		Use:   "genconfig",
		Short: MsgGenConfShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !write {
				fmt.Fprintln(cmd.OutOrStdout(), config.GenerateConfigContent())
				return nil
			}

			path := config.DefaultUserConfigPath()
			if err := config.WriteUserConfig(path); err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), style.Render(fmt.Sprintf(MsgConfigWritten, path)))
			return nil
		},
	}

	cmd.Flags().BoolVar(&write, "write", false, MsgFlagWrite)
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.Version, version.Commit, version.Date)
		},
	}
}

func (a *app) printFieldConfig(cmd *cobra.Command, source types.FieldConfigSource) error {
	format, err := codec.ParseFormat(a.cfg.Output.Format)
	if err != nil {
		return err
	}
	data, err := codec.EncodeFieldConfig(format, source)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

func (a *app) printDocument(cmd *cobra.Command, v interface{}) error {
	format, err := codec.ParseFormat(a.cfg.Output.Format)
	if err != nil {
		return err
	}
	data, err := codec.Marshal(format, v)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

// parseOptions reads JSON options, falling back to the raw string so plain
// names and patterns need no quoting
func parseOptions(raw string) interface{} {
	if raw == "" {
		return nil
	}
	var v interface{}
	if err := json.Unmarshal([]byte(raw), &v); err == nil {
		return v
	}
	return raw
}

// readFieldConfigOrEmpty starts from an empty field config when the file
// does not exist yet
func readFieldConfigOrEmpty(path string) (types.FieldConfigSource, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return types.FieldConfigSource{Overrides: []types.ConfigOverrideRule{}}, nil
	}
	return codec.ReadFieldConfig(path)
}

func formatProperties(props []types.DynamicConfigValue) string {
	parts := make([]string, 0, len(props))
	for _, p := range props {
		value, err := json.Marshal(p.Value)
		if err != nil {
			value = []byte(fmt.Sprintf("%v", p.Value))
		}
		parts = append(parts, p.ID+"="+string(value))
	}
	return strings.Join(parts, ", ")
}

func required(flags map[string]string) error {
	names := make([]string, 0, len(flags))
	for name := range flags {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if flags[name] == "" {
			return errors.Newf(errors.ErrInvalidInput, MsgMissingFlag, name)
		}
	}
	return nil
}

func nonNegative(cmd *cobra.Command, name string, value int) error {
	if !cmd.Flags().Changed(name) {
		return errors.Newf(errors.ErrInvalidInput, MsgMissingFlag, name)
	}
	if value < 0 {
		return errors.Newf(errors.ErrInvalidInput, MsgFrameFlagRange, name)
	}
	return nil
}
