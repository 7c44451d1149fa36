package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/abhisek/masteryforge/internal/concept"
	"github.com/abhisek/masteryforge/internal/engine"
)

func (s *Server) health(c *gin.Context) {
	RespondOK(c, gin.H{"status": "ok", "version": s.opts.Version})
}

func (s *Server) next(c *gin.Context) {
	user, course := c.Param("user"), c.Query("course")
	// The shared call must outlive whichever request started it.
	ctx := context.WithoutCancel(c.Request.Context())
	v, err, _ := s.inflight.Do(user+"\x00"+course, func() (any, error) {
		return s.engine.SelectNextConcept(ctx, user, course)
	})
	if err != nil {
		s.fail(c, err)
		return
	}
	RespondOK(c, NextResponse{Concept: conceptDTO(v.(*concept.Concept))})
}

func (s *Server) eligible(c *gin.Context) {
	concepts, err := s.engine.EligibleConcepts(c.Request.Context(), c.Param("user"), c.Query("course"))
	if err != nil {
		s.fail(c, err)
		return
	}
	RespondOK(c, EligibleResponse{Concepts: conceptDTOs(concepts)})
}

func (s *Server) progress(c *gin.Context) {
	report, err := s.engine.Progress(c.Request.Context(), c.Param("user"), c.Query("course"))
	if err != nil {
		s.fail(c, err)
		return
	}
	RespondOK(c, progressResponse(report))
}

func (s *Server) quiz(c *gin.Context) {
	var req QuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, CodeInvalidRequest, err)
		return
	}
	ctx := c.Request.Context()
	user := c.Param("user")

	res, err := s.engine.UpdateMasteryAfterQuiz(ctx, user, req.ConceptID, *req.ScorePercent)
	if err != nil {
		s.fail(c, err)
		return
	}

	// The attempt is committed; a failed recommendation only loses the hint.
	next, err := s.engine.RecommendNextConceptAfterQuiz(ctx, user, res.Concept.ID, res.Attempt.ScorePercent)
	if err != nil {
		s.log.Warn("post-quiz recommendation failed", "user", user, "concept", res.Concept.ID, "error", err)
		next = nil
	}
	RespondOK(c, quizResponse(res, next))
}

func (s *Server) closeSession(c *gin.Context) {
	closed, err := s.engine.CloseSession(c.Request.Context(), c.Param("user"))
	if err != nil {
		s.fail(c, err)
		return
	}
	RespondOK(c, closeSessionResponse(closed))
}

func (s *Server) fail(c *gin.Context, err error) {
	if errors.Is(err, engine.ErrUnknownConcept) {
		RespondError(c, http.StatusNotFound, CodeUnknownConcept, err)
		return
	}
	s.log.Error("request failed", "path", c.FullPath(), "error", err)
	RespondError(c, http.StatusInternalServerError, CodeInternal, errors.New("internal error"))
}
