package v1

import (
	context "context"

	http "github.com/yola1107/kratos/v2/transport/http"
)

// Operation names set on the transport for middleware selectors.
const (
	OperationWinLineDetect        = "/api.winline.v1.WinLine/Detect"
	OperationWinLineGetEvaluation = "/api.winline.v1.WinLine/GetEvaluation"
	OperationWinLineListHits      = "/api.winline.v1.WinLine/ListHits"
)

// WinLineHTTPServer is implemented by the winline service.
type WinLineHTTPServer interface {
	Detect(context.Context, *DetectRequest) (*DetectReply, error)
	GetEvaluation(context.Context, *GetEvaluationRequest) (*GetEvaluationReply, error)
	ListHits(context.Context, *ListHitsRequest) (*ListHitsReply, error)
}

// RegisterWinLineHTTPServer mounts
//
//	POST /v1/winline/detect
//	GET  /v1/winline/evaluations/{id}
//	GET  /v1/winline/hits
func RegisterWinLineHTTPServer(s *http.Server, srv WinLineHTTPServer) {
	r := s.Route("/")
	r.POST("/v1/winline/detect", _WinLine_Detect0_HTTP_Handler(srv))
	r.GET("/v1/winline/evaluations/{id}", _WinLine_GetEvaluation0_HTTP_Handler(srv))
	r.GET("/v1/winline/hits", _WinLine_ListHits0_HTTP_Handler(srv))
}

func _WinLine_Detect0_HTTP_Handler(srv WinLineHTTPServer) func(ctx http.Context) error {
	return func(ctx http.Context) error {
		var in DetectRequest
		if err := ctx.Bind(&in); err != nil {
			return err
		}
		http.SetOperation(ctx, OperationWinLineDetect)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return srv.Detect(ctx, req.(*DetectRequest))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		reply := out.(*DetectReply)
		return ctx.Result(200, reply)
	}
}

func _WinLine_GetEvaluation0_HTTP_Handler(srv WinLineHTTPServer) func(ctx http.Context) error {
	return func(ctx http.Context) error {
		var in GetEvaluationRequest
		if err := ctx.BindVars(&in); err != nil {
			return err
		}
		http.SetOperation(ctx, OperationWinLineGetEvaluation)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return srv.GetEvaluation(ctx, req.(*GetEvaluationRequest))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		reply := out.(*GetEvaluationReply)
		return ctx.Result(200, reply)
	}
}

func _WinLine_ListHits0_HTTP_Handler(srv WinLineHTTPServer) func(ctx http.Context) error {
	return func(ctx http.Context) error {
		var in ListHitsRequest
		http.SetOperation(ctx, OperationWinLineListHits)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return srv.ListHits(ctx, req.(*ListHitsRequest))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		reply := out.(*ListHitsReply)
		return ctx.Result(200, reply)
	}
}
