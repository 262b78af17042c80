package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/gauss/foundation/utils/timex"
)

var (
	parseFormat  string
	parsePattern string
	parseZone    string

	formatPattern string
	formatZone    string

	diffISO bool
)

var parseCmd = &cobra.Command{
	Use:   "parse <text>",
	Short: "Text in einen Datums- oder Zeitwert umwandeln",
	Long: `Liest einen Text mit einem Formatmuster (yyyy-MM-dd HH:mm:ss.SSS) oder,
ohne --format, in dem an der Textlänge erkannten Format.

Unterstützte Längen ohne --format:
  4 yyyy, 7 yyyy-MM, 10 yyyy-MM-dd, 13 yyyy-MM-dd HH, 16 yyyy-MM-dd HH:mm,
  19 yyyy-MM-dd HH:mm:ss, 23 yyyy-MM-dd HH:mm:ss.SSS, 29 yyyy-MM-dd HH:mm:ss.SSS Z

Beispiele:
  gauss parse "2017-05-30 14:00"
  gauss parse 30.05.2017 --format dd.MM.yyyy --pattern h=9
  gauss parse "2017-05-30 22:30" --format "yyyy-MM-dd HH:mm" --zone Europe/Berlin --pattern D+1`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

var formatCmd = &cobra.Command{
	Use:   "format <wert> <formatmuster>",
	Short: "Wert mit einem Formatmuster ausgeben",
	Long: `Gibt einen Wert mit einem Formatmuster aus. Mit --zone wird der UTC-Wert in
der Zeitzone dargestellt.

Beispiele:
  gauss format now "dd.MM.yyyy HH:mm"
  gauss format now "yyyy-MM-dd HH:mm XXX" --zone Europe/Berlin
  gauss format 2017-05-30 "EEEE, d. MMMM yyyy" --pattern D+1`,
	Args: cobra.ExactArgs(2),
	RunE: runFormat,
}

var diffCmd = &cobra.Command{
	Use:   "diff <minuend> <subtrahend> <feld>",
	Short: "Differenz zweier Werte in einer Feldeinheit",
	Long: `Berechnet minuend minus subtrahend in der Einheit des Feldcodes (Y M D h m s
ms mc ns). Mit --iso werden Werte mit Offset vor dem Vergleich nach UTC
umgerechnet.

Beispiele:
  gauss diff 2018-03-01 2017-05-30 M
  gauss diff 2017-06-01T00:00:00+02:00 2017-05-30T22:00:00Z h --iso`,
	Args: cobra.ExactArgs(3),
	RunE: runDiff,
}

var componentCmd = &cobra.Command{
	Use:   "component <wert> <feld>",
	Short: "Feldwert eines Werts ausgeben",
	Long: `Gibt den Wert eines Felds aus, z.B. den Monat (M) oder die Millisekunde (ms).

Beispiele:
  gauss component now M
  gauss component 14:00:23.439 ms`,
	Args: cobra.ExactArgs(2),
	RunE: runComponent,
}

var nextCmd = &cobra.Command{
	Use:   "next <wert> <cron>",
	Short: "Nächsten Termin eines Cron-Ausdrucks berechnen",
	Long: `Berechnet den ersten Zeitpunkt nach wert, der zu einem fünfteiligen
Cron-Ausdruck passt. Ausgewertet wird in UTC.

Beispiele:
  gauss next now "0 9 * * 1-5"
  gauss next 2017-06-03 @daily`,
	Args: cobra.ExactArgs(2),
	RunE: runNext,
}

func init() {
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(formatCmd)
	rootCmd.AddCommand(diffCmd)
	rootCmd.AddCommand(componentCmd)
	rootCmd.AddCommand(nextCmd)

	parseCmd.Flags().StringVarP(&parseFormat, "format", "f", "", "Formatmuster (default: an der Länge erkannt)")
	parseCmd.Flags().StringVarP(&parsePattern, "pattern", "p", "", "Änderungsmuster")
	parseCmd.Flags().StringVarP(&parseZone, "zone", "z", "", "Zeitzone, in der verändert wird")

	formatCmd.Flags().StringVarP(&formatPattern, "pattern", "p", "", "Änderungsmuster")
	formatCmd.Flags().StringVarP(&formatZone, "zone", "z", "", "Zeitzone der Ausgabe")

	diffCmd.Flags().BoolVar(&diffISO, "iso", false, "Werte mit Offset nach UTC umrechnen")
}

func runParse(cmd *cobra.Command, args []string) error {
	var (
		v   timex.Temporal
		err error
	)
	switch {
	case parseFormat == "":
		v, err = svc.ParseDateTimeAuto(args[0])
		if err == nil && parseZone != "" {
			v, err = svc.ModifyDateTimeByZoneID(v, parsePattern, parseZone)
		} else if err == nil {
			v, err = svc.ModifyDateTime(v, parsePattern)
		}
	case parseZone != "":
		v, err = svc.ParseDateTimeByZoneID(args[0], parseFormat, parsePattern, parseZone)
	default:
		v, err = svc.ParseDateTime(args[0], parseFormat, parsePattern)
	}
	if err != nil {
		return err
	}
	printValue(out(cmd), v)
	return nil
}

func runFormat(cmd *cobra.Command, args []string) error {
	v, err := parseValue(args[0])
	if err != nil {
		return err
	}

	var s string
	if formatZone != "" {
		s, err = svc.FormatDateTimeByZoneID(v, args[1], formatPattern, formatZone)
	} else {
		s, err = svc.FormatDateTime(v, args[1], formatPattern)
	}
	if err != nil {
		return err
	}
	printValue(out(cmd), s)
	return nil
}

func runDiff(cmd *cobra.Command, args []string) error {
	if diffISO {
		n, err := svc.DiffDateTimeISO(args[0], args[1], args[2])
		if err != nil {
			return err
		}
		printValue(out(cmd), n)
		return nil
	}

	a, err := parseValue(args[0])
	if err != nil {
		return err
	}
	b, err := parseValue(args[1])
	if err != nil {
		return err
	}
	n, err := svc.DiffDateTime(a, b, args[2])
	if err != nil {
		return err
	}
	printValue(out(cmd), n)
	return nil
}

func runComponent(cmd *cobra.Command, args []string) error {
	v, err := parseValue(args[0])
	if err != nil {
		return err
	}
	n, err := svc.DateComponent(v, args[1])
	if err != nil {
		return err
	}
	printValue(out(cmd), n)
	return nil
}

func runNext(cmd *cobra.Command, args []string) error {
	v, err := parseValue(args[0])
	if err != nil {
		return err
	}
	next, err := svc.NextScheduled(v, args[1])
	if err != nil {
		return err
	}
	printValue(out(cmd), next)
	return nil
}
