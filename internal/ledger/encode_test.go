package ledger

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestDecodeLedger(t *testing.T) {
	// A literal data file with two account blocks separated by a blank
	// line, exactly as save produces it.
	raw := `1;Alice;60
T:2025-01-02 10:30:00|DEPOSIT|100
T:2025-01-02 10:31:00|TRANSFER_OUT|40
END

2;Bob;40
T:2025-01-02 10:31:00|TRANSFER_IN|40
END
`

	l, err := DecodeLedger(strings.NewReader(raw))
	if err != nil {
		t.Fatalf("DecodeLedger() err=%v", err)
	}

	accounts := l.Accounts()
	if len(accounts) != 2 {
		t.Fatalf("decoded %d accounts, want 2", len(accounts))
	}
	if accounts[0].Owner != "Alice" || !accounts[0].Balance.Equal(d(t, "60")) {
		t.Fatalf("account 1 = %+v", accounts[0])
	}
	if accounts[1].Owner != "Bob" || !accounts[1].Balance.Equal(d(t, "40")) {
		t.Fatalf("account 2 = %+v", accounts[1])
	}

	hist, err := l.History(1)
	if err != nil {
		t.Fatal(err)
	}
	if len(hist) != 2 || hist[0].Type != TypeDeposit || hist[1].Type != TypeTransferOut {
		t.Fatalf("history = %+v", hist)
	}

	if l.NextID() != 3 {
		t.Fatalf("NextID() = %d, want 3", l.NextID())
	}
}

func TestDecodeLedgerSkipsUnknownLinesInsideBlock(t *testing.T) {
	raw := `1;Alice;100
some stray noise
T:2025-01-02 10:30:00|DEPOSIT|100
END
`
	l, err := DecodeLedger(strings.NewReader(raw))
	if err != nil {
		t.Fatalf("DecodeLedger() err=%v", err)
	}
	hist, _ := l.History(1)
	if len(hist) != 1 {
		t.Fatalf("history = %+v, want the one DEPOSIT", hist)
	}
}

func TestDecodeLedgerRecoversNextIDFromSparseIDs(t *testing.T) {
	raw := `7;Gina;0
END
3;Carl;0
END
`
	l, err := DecodeLedger(strings.NewReader(raw))
	if err != nil {
		t.Fatal(err)
	}
	if l.NextID() != 8 {
		t.Fatalf("NextID() = %d, want 8", l.NextID())
	}
}

func TestDecodeLedgerFailsLoudly(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		line int
	}{
		{"truncated block", "1;Alice;100\nT:2025-01-02 10:30:00|DEPOSIT|100\n", 1},
		{"short header", "1;Alice\nEND\n", 1},
		{"non-numeric id", "one;Alice;100\nEND\n", 1},
		{"non-numeric balance", "1;Alice;lots\nEND\n", 1},
		{"bad transaction", "1;Alice;100\nT:oops|DEPOSIT\nEND\n", 2},
		{"duplicate id", "1;Alice;0\nEND\n1;Bob;0\nEND\n", 3},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := DecodeLedger(strings.NewReader(tc.raw))
			var ferr *FormatError
			if !errors.As(err, &ferr) {
				t.Fatalf("err=%v, want *FormatError", err)
			}
			if ferr.Line != tc.line {
				t.Fatalf("FormatError.Line = %d, want %d", ferr.Line, tc.line)
			}
		})
	}
}

func TestEncodeAccountBlockShape(t *testing.T) {
	a := NewAccount(1, "Alice")
	if err := a.Deposit(d(t, "100"), testTime); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := EncodeAccount(&buf, a); err != nil {
		t.Fatal(err)
	}

	want := "1;Alice;100\nT:2025-01-02 10:30:00|DEPOSIT|100\nEND\n"
	if buf.String() != want {
		t.Fatalf("block = %q, want %q", buf.String(), want)
	}
}

// TestLedgerRoundTrip drives the ledger through real operations, encodes
// it, decodes the result, and checks the decoded ledger re-encodes to the
// same bytes.
func TestLedgerRoundTrip(t *testing.T) {
	l := newTestLedger()
	alice, _ := l.CreateAccount("Alice")
	bob, _ := l.CreateAccount("Bob")
	if err := l.Deposit(alice.ID, d(t, "100.25")); err != nil {
		t.Fatal(err)
	}
	if err := l.Transfer(alice.ID, bob.ID, d(t, "40")); err != nil {
		t.Fatal(err)
	}
	if err := l.Withdraw(bob.ID, d(t, "0.75")); err != nil {
		t.Fatal(err)
	}

	var first bytes.Buffer
	if err := EncodeLedger(&first, l); err != nil {
		t.Fatal(err)
	}

	decoded, err := DecodeLedger(bytes.NewReader(first.Bytes()))
	if err != nil {
		t.Fatalf("DecodeLedger() err=%v", err)
	}
	if decoded.NextID() != l.NextID() {
		t.Fatalf("NextID() = %d, want %d", decoded.NextID(), l.NextID())
	}

	var second bytes.Buffer
	if err := EncodeLedger(&second, decoded); err != nil {
		t.Fatal(err)
	}
	if first.String() != second.String() {
		t.Fatalf("round trip not stable:\nfirst:\n%s\nsecond:\n%s", first.String(), second.String())
	}
}

func TestDecodeEmptyInput(t *testing.T) {
	l, err := DecodeLedger(strings.NewReader(""))
	if err != nil {
		t.Fatal(err)
	}
	if len(l.Accounts()) != 0 || l.NextID() != 1 {
		t.Fatalf("empty input: accounts=%d nextID=%d", len(l.Accounts()), l.NextID())
	}
}
