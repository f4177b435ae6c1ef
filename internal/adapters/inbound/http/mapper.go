package http

import (
	"errors"

	"github.com/rionhunter/OpenAI-API-Wrapper/internal/domain"
	"github.com/rionhunter/OpenAI-API-Wrapper/internal/usecases"
)

func toError(err error) ErrorResp {
	errResp := ErrorResp{}

	var (
		validationErr *domain.ValidationErr
		notFoundErr   *domain.NotFoundErr
		unknownOpErr  *domain.UnknownOperationErr
		providerErr   *domain.ProviderErr
	)
	switch {
	case errors.As(err, &validationErr):
		errResp.Error.Code = BADREQUEST
		errResp.Error.Message = validationErr.Error()
	case errors.As(err, &unknownOpErr):
		errResp.Error.Code = BADREQUEST
		errResp.Error.Message = unknownOpErr.Error()
	case errors.As(err, &notFoundErr):
		errResp.Error.Code = NOTFOUND
		errResp.Error.Message = notFoundErr.Error()
	case errors.As(err, &providerErr):
		errResp.Error.Code = UPSTREAMERROR
		errResp.Error.Message = providerErr.Error()
	default:
		errResp.Error.Code = INTERNALERROR
		errResp.Error.Message = "internal server error"
	}
	return errResp
}

func toAssistantRunResp(res usecases.AssistantRunResult) AssistantRunResp {
	return AssistantRunResp{
		Text:     res.Text,
		Status:   string(res.Status),
		ThreadID: res.ThreadID,
		RunID:    res.RunID,
		Polls:    res.Polls,
		Skipped:  res.Skipped,
	}
}

func toImagesResp(res usecases.ImageResult) ImagesResp {
	resp := ImagesResp{
		Images:  []SavedImage{},
		Skipped: res.Skipped,
	}
	for _, img := range res.Images {
		resp.Images = append(resp.Images, SavedImage{URL: img.URL, Path: img.Path})
	}
	return resp
}

func toModelListResp(models []string) ModelListResp {
	if models == nil {
		models = []string{}
	}
	return ModelListResp{Models: models}
}
