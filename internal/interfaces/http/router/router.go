package router

import (
	"github.com/gin-gonic/gin"
)

// apiVersion prefixes every registered group; bump it together with any
// breaking change to the response envelope.
const apiVersion = "v1"

// Router collects domain groups and mounts them under the versioned API
// prefix in one place, so routes.go reads as a table of the whole surface.
type Router struct {
	engine *gin.Engine
	groups []*DomainGroup
}

// NewRouter creates a Router bound to the given engine
func NewRouter(engine *gin.Engine) *Router {
	return &Router{engine: engine}
}

// Register queues a domain group for mounting
func (r *Router) Register(group *DomainGroup) *Router {
	r.groups = append(r.groups, group)
	return r
}

// Setup mounts every registered group under /api/{version}
func (r *Router) Setup() {
	api := r.engine.Group("/api/" + apiVersion)
	for _, group := range r.groups {
		group.mount(api)
	}
}

// DomainGroup is a declarative route table for one resource (receipts,
// photos, expenses, ...). Routes and group middleware are recorded first and
// mounted together, which keeps per-group middleware such as the upload rate
// limit scoped to exactly its group.
type DomainGroup struct {
	name       string
	prefix     string
	routes     []routeDefinition
	middleware []gin.HandlerFunc
}

type routeDefinition struct {
	method   string
	path     string
	handlers []gin.HandlerFunc
}

// NewDomainGroup creates a route table mounted at the given prefix
func NewDomainGroup(name, prefix string) *DomainGroup {
	return &DomainGroup{name: name, prefix: prefix}
}

// Use adds middleware applied to every route in this group
func (dg *DomainGroup) Use(middleware ...gin.HandlerFunc) *DomainGroup {
	dg.middleware = append(dg.middleware, middleware...)
	return dg
}

func (dg *DomainGroup) handle(method, path string, handlers []gin.HandlerFunc) *DomainGroup {
	dg.routes = append(dg.routes, routeDefinition{method: method, path: path, handlers: handlers})
	return dg
}

// GET registers a GET route
func (dg *DomainGroup) GET(path string, handlers ...gin.HandlerFunc) *DomainGroup {
	return dg.handle("GET", path, handlers)
}

// POST registers a POST route
func (dg *DomainGroup) POST(path string, handlers ...gin.HandlerFunc) *DomainGroup {
	return dg.handle("POST", path, handlers)
}

// PUT registers a PUT route
func (dg *DomainGroup) PUT(path string, handlers ...gin.HandlerFunc) *DomainGroup {
	return dg.handle("PUT", path, handlers)
}

// DELETE registers a DELETE route
func (dg *DomainGroup) DELETE(path string, handlers ...gin.HandlerFunc) *DomainGroup {
	return dg.handle("DELETE", path, handlers)
}

func (dg *DomainGroup) mount(rg *gin.RouterGroup) {
	group := rg.Group(dg.prefix)
	if len(dg.middleware) > 0 {
		group.Use(dg.middleware...)
	}
	for _, route := range dg.routes {
		group.Handle(route.method, route.path, route.handlers...)
	}
}
