package instance

import (
	"bufio"
	"io"
	"os"
	"strconv"

	"github.com/pkg/errors"

	"github.com/dancsi/RationaLP/model"
	"github.com/dancsi/RationaLP/num"
)

// Reader reads a linear program in canonical form from a whitespace-token
// text file:
//
//	n m
//	c_0 ... c_{n-1}
//	b_0 ... b_{m-1}
//	A_{0,0} ... A_{m-1,n-1}
//
// where every numeric token is an exact rational (integer, p/q, or decimal).
type Reader struct {
	filename string
}

func NewReader(filename string) *Reader {
	return &Reader{filename: filename}
}

// ConstructTableauFromFile returns a *model.Tableau in standard form.
func (r *Reader) ConstructTableauFromFile() (*model.Tableau, error) {
	f, err := os.Open(r.filename)
	if err != nil {
		return nil, errors.Wrap(err, "instance: open input")
	}
	defer f.Close()

	return r.read(f)
}

func (r *Reader) read(src io.Reader) (*model.Tableau, error) {
	tr := newTokenReader(src)

	n, err := tr.nextInt("the number of variables")
	if err != nil {
		return nil, err
	}
	m, err := tr.nextInt("the number of constraints")
	if err != nil {
		return nil, err
	}
	if n <= 0 {
		return nil, errors.Errorf("instance: the program must have at least one variable, got n = %d", n)
	}
	if m <= 0 {
		return nil, errors.Errorf("instance: the program must have at least one constraint, got m = %d", m)
	}

	c, err := tr.nextNums(n, "objective coefficient")
	if err != nil {
		return nil, err
	}
	b, err := tr.nextNums(m, "constraint RHS")
	if err != nil {
		return nil, err
	}
	a := make([][]num.Num, m)
	for i := range a {
		if a[i], err = tr.nextNums(n, "constraint coefficient"); err != nil {
			return nil, err
		}
	}

	if tok, ok := tr.peek(); ok {
		return nil, errors.Errorf("instance: unexpected trailing token %q", tok)
	}

	t, err := model.New(c, a, b)
	return t, errors.Wrap(err, "instance: construct tableau")
}

type tokenReader struct {
	sc    *bufio.Scanner
	count int
}

func newTokenReader(src io.Reader) *tokenReader {
	sc := bufio.NewScanner(src)
	sc.Split(bufio.ScanWords)
	return &tokenReader{sc: sc}
}

func (tr *tokenReader) next(what string) (string, error) {
	if !tr.sc.Scan() {
		if err := tr.sc.Err(); err != nil {
			return "", errors.Wrap(err, "instance: read input")
		}
		return "", errors.Errorf("instance: unexpected end of input, expected %s", what)
	}
	tr.count++
	return tr.sc.Text(), nil
}

func (tr *tokenReader) peek() (string, bool) {
	if !tr.sc.Scan() {
		return "", false
	}
	return tr.sc.Text(), true
}

func (tr *tokenReader) nextInt(what string) (int, error) {
	tok, err := tr.next(what)
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, errors.Errorf("instance: token %d: %q is not a valid %s", tr.count, tok, what)
	}
	return v, nil
}

func (tr *tokenReader) nextNum(what string) (num.Num, error) {
	tok, err := tr.next(what)
	if err != nil {
		return num.Num{}, err
	}
	v, err := num.Parse(tok)
	if err != nil {
		return num.Num{}, errors.Wrapf(err, "instance: token %d (%s)", tr.count, what)
	}
	return v, nil
}

func (tr *tokenReader) nextNums(count int, what string) ([]num.Num, error) {
	vals := make([]num.Num, count)
	for i := range vals {
		v, err := tr.nextNum(what)
		if err != nil {
			return nil, err
		}
		vals[i] = v
	}
	return vals, nil
}
