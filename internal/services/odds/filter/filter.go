// Package filter translates AIP-160 filters over battle records into SQL.
package filter

import (
	"fmt"
	"strings"

	"go.einride.tech/aip/filtering"
	expr "google.golang.org/genproto/googleapis/api/expr/v1alpha1"
)

// SQLCondition is a WHERE clause fragment with positional parameters.
type SQLCondition struct {
	Clause string
	Params []any
}

// columns maps filter identifiers to battle_records columns.
var columns = map[string]string{
	"attackers":       "attackers",
	"defenders":       "defenders",
	"schedule":        "schedule_key",
	"win_probability": "win_probability",
	"expected_loss":   "expected_loss",
	"hits":            "hits",
}

var comparisons = map[string]string{
	filtering.FunctionEquals:        "=",
	filtering.FunctionNotEquals:     "!=",
	filtering.FunctionLessThan:      "<",
	filtering.FunctionLessEquals:    "<=",
	filtering.FunctionGreaterThan:   ">",
	filtering.FunctionGreaterEquals: ">=",
}

// BattleRecordDeclarations declares the identifiers a battle record filter may use.
func BattleRecordDeclarations() (*filtering.Declarations, error) {
	return filtering.NewDeclarations(
		filtering.DeclareStandardFunctions(),
		filtering.DeclareIdent("attackers", filtering.TypeInt),
		filtering.DeclareIdent("defenders", filtering.TypeInt),
		filtering.DeclareIdent("schedule", filtering.TypeString),
		filtering.DeclareIdent("win_probability", filtering.TypeFloat),
		filtering.DeclareIdent("expected_loss", filtering.TypeFloat),
		filtering.DeclareIdent("hits", filtering.TypeInt),
	)
}

// ParseBattleRecordFilter parses filter and returns the matching SQL condition.
// An empty filter yields an empty condition.
func ParseBattleRecordFilter(filter string) (SQLCondition, error) {
	if strings.TrimSpace(filter) == "" {
		return SQLCondition{}, nil
	}

	decls, err := BattleRecordDeclarations()
	if err != nil {
		return SQLCondition{}, fmt.Errorf("create declarations: %w", err)
	}
	parsed, err := filtering.ParseFilterString(filter, decls)
	if err != nil {
		return SQLCondition{}, fmt.Errorf("parse filter: %w", err)
	}
	return translateExpr(parsed.CheckedExpr.GetExpr())
}

func translateExpr(e *expr.Expr) (SQLCondition, error) {
	call, ok := e.GetExprKind().(*expr.Expr_CallExpr)
	if !ok {
		return SQLCondition{}, fmt.Errorf("unsupported expression type: %T", e.GetExprKind())
	}
	fn := call.CallExpr.GetFunction()
	args := call.CallExpr.GetArgs()

	switch fn {
	case filtering.FunctionAnd, filtering.FunctionOr:
		return translateLogical(fn, args)
	case filtering.FunctionNot:
		if len(args) != 1 {
			return SQLCondition{}, fmt.Errorf("NOT requires 1 argument")
		}
		inner, err := translateExpr(args[0])
		if err != nil {
			return SQLCondition{}, err
		}
		return SQLCondition{Clause: "(NOT " + inner.Clause + ")", Params: inner.Params}, nil
	}

	op, ok := comparisons[fn]
	if !ok {
		return SQLCondition{}, fmt.Errorf("unsupported function: %s", fn)
	}
	return translateComparison(args, op)
}

func translateLogical(fn string, args []*expr.Expr) (SQLCondition, error) {
	if len(args) != 2 {
		return SQLCondition{}, fmt.Errorf("%s requires 2 arguments", fn)
	}
	left, err := translateExpr(args[0])
	if err != nil {
		return SQLCondition{}, err
	}
	right, err := translateExpr(args[1])
	if err != nil {
		return SQLCondition{}, err
	}
	op := "AND"
	if fn == filtering.FunctionOr {
		op = "OR"
	}
	return SQLCondition{
		Clause: fmt.Sprintf("(%s %s %s)", left.Clause, op, right.Clause),
		Params: append(left.Params, right.Params...),
	}, nil
}

func translateComparison(args []*expr.Expr, op string) (SQLCondition, error) {
	if len(args) != 2 {
		return SQLCondition{}, fmt.Errorf("comparison requires 2 arguments")
	}
	ident, ok := args[0].GetExprKind().(*expr.Expr_IdentExpr)
	if !ok {
		return SQLCondition{}, fmt.Errorf("expected field on the left, got %T", args[0].GetExprKind())
	}
	column, ok := columns[ident.IdentExpr.GetName()]
	if !ok {
		return SQLCondition{}, fmt.Errorf("unknown field: %s", ident.IdentExpr.GetName())
	}
	constant, ok := args[1].GetExprKind().(*expr.Expr_ConstExpr)
	if !ok {
		return SQLCondition{}, fmt.Errorf("expected constant on the right, got %T", args[1].GetExprKind())
	}
	value, err := constantValue(constant.ConstExpr)
	if err != nil {
		return SQLCondition{}, err
	}
	return SQLCondition{
		Clause: fmt.Sprintf("%s %s ?", column, op),
		Params: []any{value},
	}, nil
}

func constantValue(c *expr.Constant) (any, error) {
	switch kind := c.GetConstantKind().(type) {
	case *expr.Constant_StringValue:
		return kind.StringValue, nil
	case *expr.Constant_Int64Value:
		return kind.Int64Value, nil
	case *expr.Constant_Uint64Value:
		return kind.Uint64Value, nil
	case *expr.Constant_DoubleValue:
		return kind.DoubleValue, nil
	default:
		return nil, fmt.Errorf("unsupported constant type: %T", kind)
	}
}
