package ledger

// Profile describes the column layout of a payment ledger export format.
// Adding a new ERP or bank layout is just adding a new Profile to the
// profiles slice.
type Profile struct {
	Name        string
	ProformaCol string
	DateCol     string
	AmountCol   string
	StatusCol   string // optional; empty means the layout has no status column
}

// requiredCols returns the column names that must be present for this profile to match.
func (p Profile) requiredCols() []string {
	return []string{p.ProformaCol, p.DateCol, p.AmountCol}
}

// profiles is the ordered list of ledger export formats to try during
// auto-detection. More specific profiles should come first to avoid false
// matches.
var profiles = []Profile{
	{
		Name:        "auxiliar",
		ProformaCol: "Proforma",
		DateCol:     "Fecha",
		AmountCol:   "Monto",
		StatusCol:   "Estatus",
	},
	{
		Name:        "estado de cuenta",
		ProformaCol: "Proforma",
		DateCol:     "Fecha de pago",
		AmountCol:   "Importe",
	},
}
