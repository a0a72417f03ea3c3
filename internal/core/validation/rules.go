package validation

import "github.com/SscSPs/bizbooks/internal/core/domain"

// maxAmount is the largest value a NUMERIC(14,2) column holds.
const maxAmount = "999999999999.99"

var ExpenseRules = Rules{
	{Field: "category", Label: "Category", Required: true, Kind: KindEnum, Options: options(domain.ExpenseCategories)},
	{Field: "amount", Label: "Amount", Required: true, Kind: KindNumber, Min: bound("0.01"), Max: bound(maxAmount)},
	{Field: "date", Label: "Date", Required: true, Kind: KindDate},
	{Field: "notes", Label: "Notes"},
}

var LiabilityRules = Rules{
	{Field: "type", Label: "Type", Required: true, Kind: KindEnum, Options: options(domain.LiabilityTypes)},
	{Field: "name", Label: "Name", Required: true},
	{Field: "amount", Label: "Amount", Required: true, Kind: KindNumber, Min: bound("0.01"), Max: bound(maxAmount)},
	{Field: "outstanding_amount", Label: "Outstanding Amount", Required: true, Kind: KindNumber, Min: bound("0"), Max: bound(maxAmount)},
	{Field: "interest_rate", Label: "Interest Rate", Kind: KindNumber, Min: bound("0"), Max: bound("100")},
	{Field: "due_date", Label: "Due Date", Kind: KindDate},
	{Field: "notes", Label: "Notes"},
}

var EmployeeRules = Rules{
	{Field: "name", Label: "Name", Required: true},
	{Field: "position", Label: "Position"},
	{Field: "monthly_salary", Label: "Monthly Salary", Required: true, Kind: KindNumber, Min: bound("0.01"), Max: bound(maxAmount)},
	{Field: "hire_date", Label: "Hire Date", Kind: KindDate},
	{Field: "is_active", Label: "Active", Kind: KindBool},
}

var SalaryRules = Rules{
	{Field: "employee_id", Label: "Employee", Required: true, Kind: KindUUID},
	{Field: "month", Label: "Month", Required: true, Kind: KindInteger, Min: bound("1"), Max: bound("12")},
	{Field: "year", Label: "Year", Required: true, Kind: KindInteger, Min: bound("2000"), Max: bound("2100")},
	{Field: "amount", Label: "Amount", Required: true, Kind: KindNumber, Min: bound("0.01"), Max: bound(maxAmount)},
	{Field: "status", Label: "Status", Kind: KindEnum, Options: options(domain.SalaryStatuses)},
	{Field: "paid_date", Label: "Paid Date", Kind: KindDate},
	{Field: "notes", Label: "Notes"},
}

var CashflowRules = Rules{
	{Field: "type", Label: "Type", Required: true, Kind: KindEnum, Options: options(domain.CashflowTypes)},
	{Field: "category", Label: "Category", Required: true},
	{Field: "amount", Label: "Amount", Required: true, Kind: KindNumber, Min: bound("0.01"), Max: bound(maxAmount)},
	{Field: "date", Label: "Date", Required: true, Kind: KindDate},
	{Field: "description", Label: "Description"},
	{Field: "reference_id", Label: "Reference"},
	{Field: "reference_type", Label: "Reference Type"},
}

var PDCRules = Rules{
	{Field: "cheque_number", Label: "Cheque Number", Required: true},
	{Field: "bank_name", Label: "Bank Name", Required: true},
	{Field: "amount", Label: "Amount", Required: true, Kind: KindNumber, Min: bound("0.01"), Max: bound(maxAmount)},
	{Field: "issue_date", Label: "Issue Date", Required: true, Kind: KindDate},
	{Field: "due_date", Label: "Due Date", Required: true, Kind: KindDate},
	{Field: "status", Label: "Status", Kind: KindEnum, Options: options(domain.PDCStatuses)},
	{Field: "payee", Label: "Payee"},
	{Field: "purpose", Label: "Purpose"},
	{Field: "notes", Label: "Notes"},
}

var CapitalRules = Rules{
	{Field: "type", Label: "Type", Required: true, Kind: KindEnum, Options: options(domain.CapitalTypes)},
	{Field: "amount", Label: "Amount", Required: true, Kind: KindNumber, Min: bound("0.01"), Max: bound(maxAmount)},
	{Field: "date", Label: "Date", Required: true, Kind: KindDate},
	{Field: "source", Label: "Source"},
	{Field: "description", Label: "Description"},
	{Field: "notes", Label: "Notes"},
}

var ProfileRules = Rules{
	{Field: "full_name", Label: "Full Name"},
	{Field: "company_name", Label: "Company Name"},
}

func ValidateExpense(p Payload) Result   { return Validate(ExpenseRules, p) }
func ValidateLiability(p Payload) Result { return Validate(LiabilityRules, p) }
func ValidateEmployee(p Payload) Result  { return Validate(EmployeeRules, p) }
func ValidateSalary(p Payload) Result    { return Validate(SalaryRules, p) }
func ValidateCashflow(p Payload) Result  { return Validate(CashflowRules, p) }
func ValidatePDC(p Payload) Result       { return Validate(PDCRules, p) }
func ValidateCapital(p Payload) Result   { return Validate(CapitalRules, p) }
func ValidateProfile(p Payload) Result   { return Validate(ProfileRules, p) }
