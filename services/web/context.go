package web

import (
	"github.com/gin-gonic/gin"
)

type Context struct {
	Data      any
	Err       error
	Path      string
	RequestID string
	c         *gin.Context
}

func NewContext(c *gin.Context) *Context {
	return &Context{
		Path:      c.Request.URL.Path,
		RequestID: GetRequestID(c),
		c:         c,
	}
}

func (s *Context) WithData(d any) *Context {
	s.Data = d
	return s
}

func (s *Context) WithErr(err error) *Context {
	s.Err = err
	return s
}

func (s *Context) GetGinContext() *gin.Context {
	return s.c
}
