package invoice

import (
	"net/url"
	"testing"
)

func TestValidate_AllFieldsValid(t *testing.T) {
	in := Input{CustomerID: "c1", Amount: "10", Status: "pending"}

	if errs := Validate(in); errs != nil {
		t.Fatalf("Validate() = %v, want nil", errs)
	}
}

func TestValidate_MissingCustomer(t *testing.T) {
	tests := []struct {
		name       string
		customerID string
	}{
		{"empty", ""},
		{"whitespace only", "   "},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			in := Input{CustomerID: tc.customerID, Amount: "10", Status: "paid"}
			errs := Validate(in)

			msgs, ok := errs[FieldCustomerID]
			if !ok {
				t.Fatalf("expected error for %q, got %v", FieldCustomerID, errs)
			}
			if len(msgs) != 1 || msgs[0] != "Please select a customer." {
				t.Errorf("messages = %v, want [\"Please select a customer.\"]", msgs)
			}
		})
	}
}

func TestValidate_Amount(t *testing.T) {
	tests := []struct {
		amount  string
		wantErr bool
	}{
		{"10", false},
		{"45.5", false},
		{"0.01", false},
		{"0", true},
		{"-5", true},
		{"abc", true},
		{"", true},
		{".", true},
		{"1.2.3", true},
		{"$10", true},
	}

	for _, tc := range tests {
		t.Run("amount "+tc.amount, func(t *testing.T) {
			in := Input{CustomerID: "c1", Amount: tc.amount, Status: "pending"}
			errs := Validate(in)

			_, got := errs[FieldAmount]
			if got != tc.wantErr {
				t.Errorf("amount %q: error present = %v, want %v (errs: %v)", tc.amount, got, tc.wantErr, errs)
			}
			if tc.wantErr && errs[FieldAmount][0] != "Please enter an amount greater than $0." {
				t.Errorf("message = %q", errs[FieldAmount][0])
			}
		})
	}
}

func TestValidate_Status(t *testing.T) {
	tests := []struct {
		status  string
		wantErr bool
	}{
		{"pending", false},
		{"paid", false},
		{"overdue", true},
		{"", true},
		{"Pending", true}, // case-sensitive
		{"PAID", true},
	}

	for _, tc := range tests {
		t.Run("status "+tc.status, func(t *testing.T) {
			in := Input{CustomerID: "c1", Amount: "10", Status: tc.status}
			errs := Validate(in)

			_, got := errs[FieldStatus]
			if got != tc.wantErr {
				t.Errorf("status %q: error present = %v, want %v", tc.status, got, tc.wantErr)
			}
			if tc.wantErr && errs[FieldStatus][0] != "Please select an invoice status." {
				t.Errorf("message = %q", errs[FieldStatus][0])
			}
		})
	}
}

func TestValidate_AggregatesAllViolations(t *testing.T) {
	in := Input{CustomerID: "", Amount: "0", Status: "bad"}

	errs := Validate(in)
	if len(errs) != 3 {
		t.Fatalf("expected 3 field errors, got %d: %v", len(errs), errs)
	}
	for _, field := range []string{FieldCustomerID, FieldAmount, FieldStatus} {
		if _, ok := errs[field]; !ok {
			t.Errorf("missing error for %q", field)
		}
	}
}

func TestParse_ConvertsToCents(t *testing.T) {
	tests := []struct {
		amount    string
		wantCents int64
	}{
		{"10", 1000},
		{"45.5", 4550},
		{"45.50", 4550},
		{"0.01", 1},
		{"123.456", 12346}, // third fraction digit rounds half-up
		{"123.454", 12345},
	}

	for _, tc := range tests {
		t.Run(tc.amount, func(t *testing.T) {
			in := Input{CustomerID: "c1", Amount: tc.amount, Status: "paid"}
			v, err := in.Parse()
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if v.AmountCents != tc.wantCents {
				t.Errorf("AmountCents = %d, want %d", v.AmountCents, tc.wantCents)
			}
			if v.Status != StatusPaid {
				t.Errorf("Status = %q, want %q", v.Status, StatusPaid)
			}
		})
	}
}

func TestParse_RejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name string
		in   Input
	}{
		{"empty customer", Input{CustomerID: "", Amount: "10", Status: "paid"}},
		{"zero amount", Input{CustomerID: "c1", Amount: "0", Status: "paid"}},
		{"negative amount", Input{CustomerID: "c1", Amount: "-5", Status: "paid"}},
		{"bad status", Input{CustomerID: "c1", Amount: "10", Status: "overdue"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := tc.in.Parse(); err == nil {
				t.Error("Parse() error = nil, want error")
			}
		})
	}
}

func TestFromForm(t *testing.T) {
	form := url.Values{}
	form.Set("customerId", "c1")
	form.Set("amount", "45.5")
	form.Set("status", "pending")
	form.Set("date", "2024-01-01") // ignored: date is server-generated
	form.Set("id", "i1")           // ignored: id arrives out-of-band

	in := FromForm(form)
	want := Input{CustomerID: "c1", Amount: "45.5", Status: "pending"}
	if in != want {
		t.Errorf("FromForm() = %+v, want %+v", in, want)
	}
}

func TestParseCents_Overflow(t *testing.T) {
	if _, ok := parseCents("99999999999999999999"); ok {
		t.Error("expected overflow to be rejected")
	}
}
