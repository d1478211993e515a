// Package constants provides shared constants for the loan-schedule application.
package constants

// DateLayout is the format of start dates in config files and of due dates in
// every export.
const DateLayout = "2006-01-02"

// MonthLayout is accepted as a start date that omits the day of month; the day
// defaults to the first.
const MonthLayout = "2006-01"

// MissingDate is rendered in place of an absent due date.
const MissingDate = "-"

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12
	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100
	// DecimalPlaces is the number of fractional digits shown for amounts
	DecimalPlaces = 2
	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0
	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01
)

// Amortization method names as they appear in configs and API payloads.
const (
	MethodFixedPayment   = "FixedPayment"
	MethodEqualPrincipal = "EqualPrincipal"
	MethodBalloon        = "Balloon"
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"
	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"
	// OutputFormatXLSX is the spreadsheet output format
	OutputFormatXLSX = "xlsx"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"
	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"
	// EnvPrefix prefixes every environment override
	EnvPrefix = "LOAN_SCHEDULE"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address
	DefaultServerAddress = ":8080"
	// DefaultMaxRequestSizeBytes is the default maximum request body size (256 KB)
	DefaultMaxRequestSizeBytes int64 = 256 * 1024
)

// DefaultLocale is used when no language is configured or requested.
const DefaultLocale = "en"

// ScheduleSheetName is the worksheet name used for spreadsheet exports.
const ScheduleSheetName = "Schedule"

// ScheduleColumns are the export column headers, in order.
var ScheduleColumns = []string{"Month", "Due Date", "Interest", "Principal", "Total", "Balance"}
