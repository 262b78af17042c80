package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/gauss/foundation/utils/timex"
)

var (
	modifyZone string
	modifySkip bool

	businessZone     string
	businessWeekends []string
)

var modifyCmd = &cobra.Command{
	Use:   "modify <wert> <muster>",
	Short: "Wert mit einem Änderungsmuster verändern",
	Long: `Wendet ein Änderungsmuster auf einen Wert an.

Mit --zone wird der UTC-Wert in die Zeitzone verschoben, dort auf der
lokalen Uhr verändert und wieder nach UTC umgerechnet (sommerzeitkorrekt).
Mit --skip-weekends wird ein Ergebnis auf einem Wochenendtag auf den
nächsten Werktag in Änderungsrichtung verschoben.

Beispiele:
  gauss modify 2017-05-30T14:00 D+1:h=0
  gauss modify now Y+1 --zone Europe/Berlin
  gauss modify today D+4 --skip-weekends`,
	Args: cobra.ExactArgs(2),
	RunE: runModify,
}

var businessCmd = &cobra.Command{
	Use:   "business <wert> <muster>",
	Short: "Wert verändern und arbeitsfreie Tage überspringen",
	Long: `Verändert einen Wert und verlängert das Ergebnis um jeden Wochenend- oder
Feiertag, der auf dem Weg liegt. Feiertage kommen aus calendar.holidays_file.

Beispiele:
  gauss business 2017-05-30 D+4
  gauss business now D-3 --weekends FRIDAY,SATURDAY
  gauss business now D+10 --zone Asia/Tokyo`,
	Args: cobra.ExactArgs(2),
	RunE: runBusiness,
}

var workdaysCmd = &cobra.Command{
	Use:   "workdays <start> <ende>",
	Short: "Arbeitstage zwischen zwei Daten zählen",
	Long: `Zählt die Arbeitstage von start bis ende, beide eingeschlossen. Liegt ende
vor start, ist das Ergebnis negativ.

Beispiele:
  gauss workdays 2017-05-29 2017-06-04`,
	Args: cobra.ExactArgs(2),
	RunE: runWorkdays,
}

func init() {
	rootCmd.AddCommand(modifyCmd)
	rootCmd.AddCommand(businessCmd)
	rootCmd.AddCommand(workdaysCmd)

	modifyCmd.Flags().StringVarP(&modifyZone, "zone", "z", "", "Zeitzone, in der verändert wird")
	modifyCmd.Flags().BoolVar(&modifySkip, "skip-weekends", false, "Ergebnis vom Wochenende schieben")

	businessCmd.Flags().StringVarP(&businessZone, "zone", "z", "", "Zeitzone, in der verändert wird")
	businessCmd.Flags().StringSliceVar(&businessWeekends, "weekends", nil, "Wochenendtage statt calendar.weekends")
}

func runModify(cmd *cobra.Command, args []string) error {
	v, err := parseValue(args[0])
	if err != nil {
		return err
	}

	var res timex.Temporal
	switch {
	case modifyZone != "":
		res, err = svc.ModifyDateTimeByZoneIDSkipWeekends(v, args[1], modifySkip, modifyZone)
	default:
		res, err = svc.ModifyDateTimeSkipWeekends(v, args[1], modifySkip)
	}
	if err != nil {
		return err
	}
	printValue(out(cmd), res)
	return nil
}

func runBusiness(cmd *cobra.Command, args []string) error {
	v, err := parseValue(args[0])
	if err != nil {
		return err
	}

	weekends := splitList(businessWeekends)
	var res timex.Temporal
	if businessZone != "" {
		res, err = svc.ModifyBusinessDateTimeByZoneID(v, args[1], businessZone, weekends...)
	} else {
		res, err = svc.ModifyBusinessDateTime(v, args[1], weekends...)
	}
	if err != nil {
		return err
	}
	printValue(out(cmd), res)
	return nil
}

func runWorkdays(cmd *cobra.Command, args []string) error {
	start, err := parseValue(args[0])
	if err != nil {
		return err
	}
	end, err := parseValue(args[1])
	if err != nil {
		return err
	}
	n, err := svc.CountBusinessDays(start, end)
	if err != nil {
		return err
	}
	printValue(out(cmd), n)
	return nil
}
