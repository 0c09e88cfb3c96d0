// Copyright 2023 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package visitors

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"regexp"

	"github.com/linuxboot/ifrkit/pkg/ifr"
)

// Find scans the tree for records matching a predicate.
type Find struct {
	// Input
	Predicate func(r *ifr.Record) bool

	// Output
	Matches []*ifr.Record

	// JSON is written here when set.
	W io.Writer
}

// Run wraps Visit and performs some setup and teardown tasks.
func (v *Find) Run(n ifr.Node) error {
	v.Matches = nil
	if err := n.Apply(v); err != nil {
		return err
	}
	if v.W != nil {
		b, err := json.MarshalIndent(v.Matches, "", "\t")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(v.W, string(b))
		return err
	}
	return nil
}

// Visit applies the Find visitor to any node.
func (v *Find) Visit(n ifr.Node) error {
	if r, ok := n.(*ifr.Record); ok && v.Predicate(r) {
		v.Matches = append(v.Matches, r)
	}
	return n.ApplyChildren(v)
}

// FindOpcodePred matches records whose opcode name matches the
// regular expression.
func FindOpcodePred(expr string) (func(r *ifr.Record) bool, error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, err
	}
	return func(r *ifr.Record) bool {
		return re.MatchString(r.Op.String())
	}, nil
}

// FindQuestionPred matches question records carrying the given
// question handle.
func FindQuestionPred(qid ifr.QuestionID) func(r *ifr.Record) bool {
	return func(r *ifr.Record) bool {
		q, ok := questionOf(r.Body)
		return ok && q.QuestionID == qid
	}
}

// FindVarstorePred matches variable store declarations whose name
// matches the regular expression.
func FindVarstorePred(expr string) (func(r *ifr.Record) bool, error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, err
	}
	return func(r *ifr.Record) bool {
		switch b := r.Body.(type) {
		case *ifr.Varstore:
			return re.MatchString(b.Name)
		case *ifr.VarstoreEFI:
			return re.MatchString(b.Name)
		}
		return false
	}, nil
}

// questionOf pulls the question header out of the bodies that carry
// one.
func questionOf(b ifr.Body) (*ifr.QuestionHeader, bool) {
	switch b := b.(type) {
	case *ifr.OneOf:
		return &b.Question, true
	case *ifr.Checkbox:
		return &b.Question, true
	case *ifr.Numeric:
		return &b.Question, true
	case *ifr.Password:
		return &b.Question, true
	case *ifr.Action:
		return &b.Question, true
	case *ifr.Ref:
		return &b.Question, true
	case *ifr.Date:
		return &b.Question, true
	case *ifr.Time:
		return &b.Question, true
	case *ifr.String:
		return &b.Question, true
	case *ifr.OrderedList:
		return &b.Question, true
	}
	return nil, false
}

func init() {
	RegisterCLI("find", "find records by opcode name regexp", 1, func(args []string) (ifr.Visitor, error) {
		pred, err := FindOpcodePred(args[0])
		if err != nil {
			return nil, err
		}
		return &Find{
			Predicate: pred,
			W:         os.Stdout,
		}, nil
	})

	RegisterCLI("find-varstore", "find variable stores by name regexp", 1, func(args []string) (ifr.Visitor, error) {
		pred, err := FindVarstorePred(args[0])
		if err != nil {
			return nil, err
		}
		return &Find{
			Predicate: pred,
			W:         os.Stdout,
		}, nil
	})
}
