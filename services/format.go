package services

// SheetFormat identifies the layout of an uploaded spreadsheet.
type SheetFormat int

const (
	FormatStandard SheetFormat = iota
	FormatProviderReport
)

func (f SheetFormat) String() string {
	switch f {
	case FormatProviderReport:
		return "ProviderReport"
	default:
		return "Standard"
	}
}

// Provider report columns.
const (
	colSaleNumber = "Venda Nº"
	colPayerName  = "Pagante"
	colNationalID = "CPF"
	colRevenue    = "Receitas"
	colPersonType = "Tipo Pessoa"
	colSector     = "Setor"
	colProduct    = "Produto"
	colEmail      = "E-mail"
	colEndDate    = "Data Fim"
	colPhone      = "Telefone"
)

var providerReportColumns = []string{colSaleNumber, colPayerName, colNationalID, colRevenue, colPersonType}

// DetectFormat picks FormatProviderReport when every required provider column
// is present in headers, and FormatStandard otherwise.
func DetectFormat(headers []string) SheetFormat {
	present := make(map[string]bool, len(headers))
	for _, h := range headers {
		present[h] = true
	}
	for _, col := range providerReportColumns {
		if !present[col] {
			return FormatStandard
		}
	}
	return FormatProviderReport
}
