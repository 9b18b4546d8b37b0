package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/katalvlaran/taut/dubins"
	"github.com/katalvlaran/taut/geom"
	"github.com/katalvlaran/taut/hull"
	"github.com/katalvlaran/taut/render"
	"github.com/katalvlaran/taut/route"
	"github.com/katalvlaran/taut/sequence"
	"github.com/katalvlaran/taut/tangency"
)

func (s *Server) health(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"status":  "healthy",
		"version": Version,
	})
}

func (s *Server) info(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"name":    "taut envelope API",
		"version": Version,
		"features": []string{
			"Dubins path calculations (6 variants)",
			"Envelopes over pinned disk sequences",
			"Shortest routes through disk fields",
			"Taut convex hulls of disk sets",
		},
	})
}

func (s *Server) dubinsInfo(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"path_types": []echo.Map{
			{"name": "LSL", "description": "Left-Straight-Left"},
			{"name": "RSR", "description": "Right-Straight-Right"},
			{"name": "LSR", "description": "Left-Straight-Right"},
			{"name": "RSL", "description": "Right-Straight-Left"},
			{"name": "LRL", "description": "Left-Right-Left"},
			{"name": "RLR", "description": "Right-Left-Right"},
		},
		"reference": "Diaz, A., & Ayala, L. (2020). Census of bounded curvature paths.",
	})
}

func (s *Server) dubinsCompute(c echo.Context) error {
	var (
		started   time.Time
		req       DubinsPathRequest
		minRadius float64
	)

	started = time.Now()
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.StartPose == nil || req.EndPose == nil {
		return echo.NewHTTPError(http.StatusBadRequest, "start_pose and end_pose are required")
	}
	minRadius = 1
	if req.MinRadius != nil {
		minRadius = *req.MinRadius
	}
	if minRadius <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "min_radius must be positive")
	}

	var (
		start = dubins.Pose(*req.StartPose)
		end   = dubins.Pose(*req.EndPose)
		resp  DubinsPathResponse
	)

	resp.OptimalPath = pathDTO(dubins.MinimalPath(start, end, dubins.WithMinRadius(minRadius)))

	if req.ComputeAll {
		var (
			all  []dubins.Path
			p    dubins.Path
			dtos []DubinsPath
		)
		all = dubins.AllPaths(start, end, dubins.WithMinRadius(minRadius))
		dtos = make([]DubinsPath, 0, len(all))
		for _, p = range all {
			if p.Valid {
				dtos = append(dtos, pathDTO(p))
			}
		}
		resp.AllPaths = dtos
	}

	resp.ComputationTimeMS = msSince(started)

	return c.JSON(http.StatusOK, resp)
}

func (s *Server) envelopeSolve(c echo.Context) error {
	var (
		started time.Time
		req     EnvelopeSolveRequest
	)

	started = time.Now()
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	g, err := tangency.Build(toGeomDisks(req.Disks))
	if err != nil {
		return echo.NewHTTPError(statusFor(err), err.Error())
	}

	opts := make([]sequence.Option, 0, 2)
	if req.Closed {
		opts = append(opts, sequence.WithClosed())
	}
	if len(req.Chiralities) > 0 {
		chir, cerr := parseChiralities(req.Chiralities)
		if cerr != nil {
			return echo.NewHTTPError(http.StatusBadRequest, cerr.Error())
		}
		opts = append(opts, sequence.WithChiralities(chir...))
	}

	res, err := sequence.FindPath(g, req.DiskSequence, opts...)
	if err != nil {
		if errors.Is(err, sequence.ErrNoPath) {
			return c.JSON(http.StatusOK, EnvelopeSolveResponse{
				Message:           err.Error(),
				ComputationTimeMS: msSince(started),
			})
		}
		return echo.NewHTTPError(statusFor(err), err.Error())
	}

	return c.JSON(http.StatusOK, EnvelopeSolveResponse{
		Valid:             true,
		Segments:          segmentDTOs(res.Path),
		Chiralities:       chiralityStrings(res.Chiralities),
		TotalLength:       res.Length,
		PathData:          render.PathData(res.Path),
		ComputationTimeMS: msSince(started),
	})
}

func (s *Server) envelopeRoute(c echo.Context) error {
	var (
		started time.Time
		req     EnvelopeRouteRequest
		anchors []geom.Point
		i       int
	)

	started = time.Now()
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	anchors = make([]geom.Point, 0, len(req.Anchors))
	for i = range req.Anchors {
		anchors = append(anchors, geom.Point{X: req.Anchors[i].X, Y: req.Anchors[i].Y})
	}

	res, err := route.FindPathFromPoints(anchors, toGeomDisks(req.Disks))
	if err != nil {
		if errors.Is(err, route.ErrNoRoute) {
			return c.JSON(http.StatusOK, EnvelopeRouteResponse{
				Message:           err.Error(),
				ComputationTimeMS: msSince(started),
			})
		}
		return echo.NewHTTPError(statusFor(err), err.Error())
	}

	return c.JSON(http.StatusOK, EnvelopeRouteResponse{
		Valid:             true,
		Segments:          segmentDTOs(res.Path),
		TotalLength:       res.Length,
		PathData:          render.PathData(res.Path),
		ComputationTimeMS: msSince(started),
	})
}

func (s *Server) envelopeHull(c echo.Context) error {
	var (
		started   time.Time
		req       FlexibleEnvelopeRequest
		smoothing float64
	)

	started = time.Now()
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	smoothing = 0.8
	if req.SmoothingFactor != nil {
		smoothing = *req.SmoothingFactor
	}
	if smoothing < 0 || smoothing > 1 {
		return echo.NewHTTPError(http.StatusBadRequest, "smoothing_factor must be within [0, 1]")
	}

	res, err := hull.Hull(toGeomDisks(req.Disks))
	if err != nil {
		return echo.NewHTTPError(statusFor(err), err.Error())
	}

	// Smoothing scales the sampling density; the envelope itself is exact.
	samples := 4 + int(60*smoothing)

	return c.JSON(http.StatusOK, FlexibleEnvelopeResponse{
		EnvelopePoints:    envelopePoints(res.Path, true),
		ConvexHullIndices: res.HullIndices,
		SmoothedCurve:     sampleCurve(res.Path, samples),
		ComputationTimeMS: msSince(started),
	})
}
