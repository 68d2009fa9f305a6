package main

import (
	"encoding/json"
	"io"
	"os"

	"github.com/pkg/errors"

	echoapi "github.com/masomo-lms/portal/apps/api/echo"
	"github.com/masomo-lms/portal/core"
	"github.com/masomo-lms/portal/core/content"
	"github.com/masomo-lms/portal/core/contenttype"
	"github.com/masomo-lms/portal/core/course"
	"github.com/masomo-lms/portal/core/enrollment"
)

// Payload kinds accepted by `normalize -kind`.
const (
	kindStudent     = "student"
	kindCourses     = "courses"
	kindCourse      = "course"
	kindEnrollments = "enrollments"
)

var kinds = []string{kindStudent, kindCourses, kindCourse, kindEnrollments}

type (
	// coursesPayload holds the three dashboard lists as the backend returns them.
	coursesPayload struct {
		Enrollments []enrollment.EnrollmentDTO `json:"enrollments"`
		Completed   []course.CourseDTO         `json:"completed"`
		Available   []course.CourseDTO         `json:"available"`
	}

	coursePayload struct {
		Course     *content.CourseDTO     `json:"course"`
		Modules    []content.ModuleDTO    `json:"modules"`
		Statistics *content.StatisticsDTO `json:"statistics"`
	}
)

// normalize reads a backend payload of the given kind and prints its view model.
func (cli *commandLine) normalize(kind, file string) error {
	data, err := cli.readFile(file)
	if err != nil {
		return err
	}

	switch core.CleanString(kind, true /* lower */) {
	case kindStudent:
		var usr *course.UserDTO
		if err := json.Unmarshal(data, &usr); err != nil {
			return errors.Wrapf(err, "decoding %s", file)
		}
		return cli.print(course.MapStudentData(usr))
	case kindCourses:
		var p coursesPayload
		if err := json.Unmarshal(data, &p); err != nil {
			return errors.Wrapf(err, "decoding %s", file)
		}
		return cli.print(course.MapCourseData(p.Enrollments, p.Completed, p.Available))
	case kindCourse:
		var p coursePayload
		if err := json.Unmarshal(data, &p); err != nil {
			return errors.Wrapf(err, "decoding %s", file)
		}
		for i := range p.Modules {
			for j, item := range p.Modules[i].Items {
				p.Modules[i].Items[j] = contenttype.EnhanceContentResponse(item)
			}
		}
		return cli.print(content.TransformCourseData(p.Course, p.Modules, p.Statistics))
	case kindEnrollments:
		var dtos []enrollment.EnrollmentDTO
		if err := json.Unmarshal(data, &dtos); err != nil {
			return errors.Wrapf(err, "decoding %s", file)
		}
		return cli.print(enrollment.MapEnrollmentDTOs(dtos))
	default:
		return core.NewArgumentError("unknown kind " + kind)
	}
}

func (cli *commandLine) readFile(file string) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	if file == "-" {
		data, err = io.ReadAll(cli.in)
	} else {
		data, err = os.ReadFile(file)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", file)
	}
	return data, nil
}

func (cli *commandLine) currentTerm() error {
	_, err := io.WriteString(cli.out, course.DetermineCurrentTerm()+"\n")
	return err
}

func (cli *commandLine) token(sess core.Session) error {
	if err := sess.Validate(); err != nil {
		return err
	}
	token, err := echoapi.GenerateToken(echoapi.NewClaims(sess))
	if err != nil {
		return err
	}
	_, err = io.WriteString(cli.out, token+"\n")
	return err
}
