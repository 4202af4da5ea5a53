package ledger

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// The data file is line-oriented text, one block per account:
//
//	<id>;<owner>;<balance>
//	T:<timestamp>|<type>|<amount>
//	...
//	END
//
// Blank lines between blocks are permitted and skipped. The format carries
// no escaping, which is why ValidateOwner bans the reserved characters.

// EncodeAccount writes one account block.
func EncodeAccount(w io.Writer, a *Account) error {
	if _, err := fmt.Fprintf(w, "%d;%s;%s\n", a.ID, a.Owner, a.Balance.String()); err != nil {
		return err
	}
	for _, t := range a.History {
		if _, err := fmt.Fprintf(w, "T:%s\n", t.Encode()); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "END")
	return err
}

// EncodeLedger writes every account block in insertion order.
func EncodeLedger(w io.Writer, l *Ledger) error {
	for _, a := range l.accounts {
		if err := EncodeAccount(w, a); err != nil {
			return err
		}
	}
	return nil
}

// DecodeLedger reads a complete data file. Any malformed header,
// transaction line, truncated block, or duplicate id is a *FormatError and
// aborts the load; a partially decoded ledger is never returned.
func DecodeLedger(r io.Reader) (*Ledger, error) {
	l := New()
	sc := bufio.NewScanner(r)

	lineNo := 0
	for sc.Scan() {
		lineNo++
		header := sc.Text()
		if strings.TrimSpace(header) == "" {
			continue
		}

		headerLine := lineNo
		a, err := decodeAccount(sc, header, &lineNo)
		if err != nil {
			return nil, err
		}
		if err := l.restore(a); err != nil {
			return nil, &FormatError{Line: headerLine, Msg: err.Error()}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return l, nil
}

// decodeAccount parses one block: the header line already consumed by the
// caller, then lines from the scanner up to the END terminator. Lines that
// are neither transactions nor END are skipped.
func decodeAccount(sc *bufio.Scanner, header string, lineNo *int) (*Account, error) {
	headerLine := *lineNo

	fields := strings.Split(header, ";")
	if len(fields) < 3 {
		return nil, &FormatError{Line: headerLine, Msg: fmt.Sprintf("account header %q: want 3 ';'-delimited fields, got %d", header, len(fields))}
	}

	id, err := strconv.ParseInt(strings.TrimSpace(fields[0]), 10, 64)
	if err != nil {
		return nil, &FormatError{Line: headerLine, Msg: fmt.Sprintf("account id %q is not an integer", fields[0])}
	}
	balance, err := decimal.NewFromString(strings.TrimSpace(fields[2]))
	if err != nil {
		return nil, &FormatError{Line: headerLine, Msg: fmt.Sprintf("account %d: balance %q is not numeric", id, fields[2])}
	}

	a := &Account{ID: id, Owner: fields[1], Balance: balance}

	for sc.Scan() {
		*lineNo++
		line := sc.Text()
		if line == "END" {
			return a, nil
		}
		data, ok := strings.CutPrefix(line, "T:")
		if !ok {
			continue
		}
		t, err := DecodeTransaction(data)
		if err != nil {
			return nil, &FormatError{Line: *lineNo, Msg: err.Error()}
		}
		a.History = append(a.History, t)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return nil, &FormatError{Line: headerLine, Msg: fmt.Sprintf("account %d: input ends before END terminator", id)}
}
