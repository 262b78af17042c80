package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/msto63/gauss/foundation/utils/timex"
	"github.com/msto63/gauss/internal/gauss/holidays"
	"github.com/msto63/gauss/internal/tui"
)

var holidaysYear int

var callCmd = &cobra.Command{
	Use:   "call <funktion> [argumente...]",
	Short: "Funktion des Auswerters aufrufen",
	Long: `Ruft eine Funktion des Auswerters mit Textargumenten auf. Datums- und
Zeitargumente werden im ISO-Format oder einem an der Länge erkannten Format
gelesen. "gauss functions" listet alle Funktionen.

Beispiele:
  gauss call getDateTime D+1:h=0
  gauss call modifyBusinessDateTime 2017-05-30 D+4 SUNDAY
  gauss call formatNowByZoneId "yyyy-MM-dd HH:mm XXX" "" Europe/Berlin`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCall,
}

var functionsCmd = &cobra.Command{
	Use:   "functions",
	Short: "Funktionen des Auswerters anzeigen",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var rows [][]string
		for _, fn := range svc.Functions() {
			rows = append(rows, []string{fn.Name, fn.Signature, fn.Description})
		}
		fmt.Fprintln(out(cmd), tui.TitleStyle.Render("Funktionen"))
		fmt.Fprintln(out(cmd), tui.RenderTable([]string{"Name", "Signatur", "Beschreibung"}, rows))
		return nil
	},
}

var fieldsCmd = &cobra.Command{
	Use:   "fields",
	Short: "Feldcodes der Änderungsmuster anzeigen",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var rows [][]string
		for _, f := range timex.Fields() {
			lo, hi := f.Range()
			kind := "Uhrzeit"
			if f.IsDateBased() {
				kind = "Datum"
			}
			rows = append(rows, []string{f.Code(), f.Name(), fmt.Sprintf("%d..%d", lo, hi), kind})
		}
		fmt.Fprintln(out(cmd), tui.TitleStyle.Render("Felder"))
		fmt.Fprintln(out(cmd), tui.RenderTable([]string{"Code", "Name", "Bereich", "Art"}, rows))
		return nil
	},
}

var holidaysCmd = &cobra.Command{
	Use:   "holidays",
	Short: "Feiertage des konfigurierten Kalenders anzeigen",
	Long: `Zeigt die Feiertage aus calendar.holidays_file. Mit --year werden nur die
Feiertage eines Jahres angezeigt.

Beispiele:
  gauss holidays --year 2026`,
	Args: cobra.NoArgs,
	RunE: runHolidays,
}

func init() {
	rootCmd.AddCommand(callCmd)
	rootCmd.AddCommand(functionsCmd)
	rootCmd.AddCommand(fieldsCmd)
	rootCmd.AddCommand(holidaysCmd)

	holidaysCmd.Flags().IntVar(&holidaysYear, "year", 0, "Nur dieses Jahr anzeigen")
}

func runCall(cmd *cobra.Command, args []string) error {
	values := make([]any, len(args)-1)
	for i, a := range args[1:] {
		values[i] = a
	}
	res, err := svc.Call(args[0], values...)
	if err != nil {
		return err
	}
	printValue(out(cmd), res)
	return nil
}

func runHolidays(cmd *cobra.Command, args []string) error {
	var rows [][]string
	for _, h := range svc.Holidays() {
		if holidaysYear != 0 && h.Date.Time().Year() != holidaysYear {
			continue
		}
		rows = append(rows, holidayRow(h))
	}
	if len(rows) == 0 {
		fmt.Fprintln(out(cmd), "Keine Feiertage konfiguriert.")
		return nil
	}
	fmt.Fprintln(out(cmd), tui.TitleStyle.Render("Feiertage ("+strconv.Itoa(len(rows))+")"))
	fmt.Fprintln(out(cmd), tui.RenderTable([]string{"Datum", "Wochentag", "Name"}, rows))
	return nil
}

func holidayRow(h holidays.Holiday) []string {
	return []string{h.Date.String(), h.Date.Weekday().String(), h.Name}
}
