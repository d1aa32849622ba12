package stockbook

import "testing"

func TestMoney_arithmetic(t *testing.T) {
	profit := USD(15).Sub(USD(5)).MulInt(3)
	if !profit.Equal(USD(30)) {
		t.Errorf("(15-5)*3 = %s, want %s", profit.Text(), USD(30).Text())
	}

	total := USD(0).Add(USD(10.25)).Add(USD(0.75))
	if !total.Equal(USD(11)) {
		t.Errorf("10.25+0.75 = %s, want 11", total.Text())
	}
}

func TestMoney_comparisons(t *testing.T) {
	if !USD(5).LessThan(USD(10)) {
		t.Error("5 < 10 should hold")
	}
	if !USD(10).GreaterThan(USD(5)) {
		t.Error("10 > 5 should hold")
	}
	if USD(5).IsNegative() || !USD(-5).IsNegative() {
		t.Error("IsNegative is wrong")
	}
	if !M(0, "USD").IsZero() {
		t.Error("0 should be zero")
	}
}

func TestMoney_Text_keepsPrecision(t *testing.T) {
	m, err := ParseMoney("12.345", "USD")
	if err != nil {
		t.Fatal(err)
	}
	if got := m.Text(); got != "12.345" {
		t.Errorf("Text() = %q, want %q", got, "12.345")
	}
}

func TestMoney_String_formatsCurrency(t *testing.T) {
	if got, want := USD(1234.5).String(), "$1,234.50"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestParseMoney_invalid(t *testing.T) {
	if _, err := ParseMoney("twelve", "USD"); err == nil {
		t.Error("expected error for non-numeric amount")
	}
}

func TestMoney_weakCurrency(t *testing.T) {
	// the zero Money has no currency and adopts the other operand's.
	var zero Money
	sum := zero.Add(USD(3))
	if sum.Currency() != "USD" || !sum.Equal(USD(3)) {
		t.Errorf("zero+3USD = %s %s, want 3 USD", sum.Text(), sum.Currency())
	}
}
