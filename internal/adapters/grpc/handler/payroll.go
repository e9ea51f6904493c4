package handler

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/ogurasousui/codex-grpc-payroll/internal/adapters/grpc/payrollrpc"
	"github.com/ogurasousui/codex-grpc-payroll/internal/core/payroll"
	"github.com/ogurasousui/codex-grpc-payroll/internal/core/payrun"
	"github.com/ogurasousui/codex-grpc-payroll/internal/core/roster"
)

var _ payrollrpc.PayrollServiceServer = (*PayrollGrpcHandler)(nil)

// PayrollGrpcHandler は PayrollService の gRPC 実装です。
type PayrollGrpcHandler struct {
	svc payrun.UseCase
}

// NewPayrollGrpcHandler は PayrollGrpcHandler を生成します。
func NewPayrollGrpcHandler(svc payrun.UseCase) *PayrollGrpcHandler {
	return &PayrollGrpcHandler{svc: svc}
}

// RunPayroll は登録済み名簿に対して給与計算を実行します。
func (h *PayrollGrpcHandler) RunPayroll(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	ids, err := stringList(req.GetFields()["employee_ids"])
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, fmt.Sprintf("employee_ids: %v", err))
	}

	run, err := h.svc.RunPayroll(ctx, payrun.RunPayrollInput{EmployeeIDs: ids})
	if err != nil {
		return nil, toStatusError(err)
	}

	return toProtoRun(run)
}

// CalculatePayroll はリクエストに含まれる名簿に対して給与計算を実行します。
func (h *PayrollGrpcHandler) CalculatePayroll(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	list := req.GetFields()["employees"].GetListValue()
	if list == nil {
		return nil, status.Error(codes.InvalidArgument, "employees must be a list")
	}

	records := make([]roster.Record, 0, len(list.GetValues()))
	for i, v := range list.GetValues() {
		rec, err := toRecord(v.GetStructValue())
		if err != nil {
			return nil, status.Error(codes.InvalidArgument, fmt.Sprintf("employees[%d]: %v", i, err))
		}
		records = append(records, rec)
	}

	run, err := h.svc.CalculatePayroll(ctx, payrun.CalculatePayrollInput{Records: records})
	if err != nil {
		return nil, toStatusError(err)
	}

	return toProtoRun(run)
}

func toRecord(s *structpb.Struct) (roster.Record, error) {
	if s == nil {
		return roster.Record{}, fmt.Errorf("employee must be an object")
	}
	fields := s.GetFields()

	var (
		rec  roster.Record
		kind string
		err  error
	)
	strs := []struct {
		key string
		dst *string
	}{
		{"id", &rec.ID},
		{"name", &rec.Name},
		{"kind", &kind},
		{"hire_date", &rec.HireDate},
		{"monthly_salary", &rec.MonthlySalary},
		{"hourly_rate", &rec.HourlyRate},
		{"hours_worked", &rec.HoursWorked},
		{"base_salary", &rec.BaseSalary},
		{"sales_amount", &rec.SalesAmount},
		{"commission_percent", &rec.CommissionPercent},
	}
	for _, f := range strs {
		if *f.dst, err = scalarString(fields[f.key]); err != nil {
			return roster.Record{}, fmt.Errorf("%s: %w", f.key, err)
		}
	}
	rec.Kind = payroll.Kind(kind)

	if rec.Permanent, err = boolValue(fields["permanent"]); err != nil {
		return roster.Record{}, fmt.Errorf("permanent: %w", err)
	}
	if rec.AcceptSavingsFund, err = boolValue(fields["accept_savings_fund"]); err != nil {
		return roster.Record{}, fmt.Errorf("accept_savings_fund: %w", err)
	}
	if rec.MonthsOfService, err = intValue(fields["months_of_service"]); err != nil {
		return roster.Record{}, fmt.Errorf("months_of_service: %w", err)
	}

	return rec, nil
}

// scalarString は文字列または数値を 10 進文字列として取り出します。
// 精度を保つには金額を文字列で渡してください。
func scalarString(v *structpb.Value) (string, error) {
	switch k := v.GetKind().(type) {
	case nil, *structpb.Value_NullValue:
		return "", nil
	case *structpb.Value_StringValue:
		return k.StringValue, nil
	case *structpb.Value_NumberValue:
		return strconv.FormatFloat(k.NumberValue, 'f', -1, 64), nil
	default:
		return "", fmt.Errorf("must be a string or number")
	}
}

func boolValue(v *structpb.Value) (bool, error) {
	switch k := v.GetKind().(type) {
	case nil, *structpb.Value_NullValue:
		return false, nil
	case *structpb.Value_BoolValue:
		return k.BoolValue, nil
	default:
		return false, fmt.Errorf("must be a bool")
	}
}

func intValue(v *structpb.Value) (int, error) {
	switch k := v.GetKind().(type) {
	case nil, *structpb.Value_NullValue:
		return 0, nil
	case *structpb.Value_NumberValue:
		n := int(k.NumberValue)
		if float64(n) != k.NumberValue {
			return 0, fmt.Errorf("must be an integer")
		}
		return n, nil
	case *structpb.Value_StringValue:
		return strconv.Atoi(k.StringValue)
	default:
		return 0, fmt.Errorf("must be an integer")
	}
}

func stringList(v *structpb.Value) ([]string, error) {
	switch k := v.GetKind().(type) {
	case nil, *structpb.Value_NullValue:
		return nil, nil
	case *structpb.Value_ListValue:
		out := make([]string, 0, len(k.ListValue.GetValues()))
		for _, item := range k.ListValue.GetValues() {
			s, ok := item.GetKind().(*structpb.Value_StringValue)
			if !ok {
				return nil, fmt.Errorf("must contain only strings")
			}
			out = append(out, s.StringValue)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("must be a list of strings")
	}
}

func toProtoRun(run *payrun.Run) (*structpb.Struct, error) {
	if run == nil {
		return nil, status.Error(codes.Internal, "payroll run is empty")
	}

	results := make([]any, 0, len(run.Results))
	for _, r := range run.Results {
		results = append(results, map[string]any{
			"employee_id": r.EmployeeID(),
			"gross":       r.Gross().String(),
			"deductions":  r.Deductions().String(),
			"net":         r.Net().String(),
		})
	}

	out, err := structpb.NewStruct(map[string]any{
		"run_id":           run.ID,
		"evaluated_at":     run.EvaluatedAt.UTC().Format(time.RFC3339),
		"results":          results,
		"total_gross":      run.TotalGross.String(),
		"total_deductions": run.TotalDeductions.String(),
		"total_net":        run.TotalNet.String(),
	})
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return out, nil
}
