package sheetparser

import (
	"log"

	"github.com/pkg/errors"

	"timetable_ingest/model"
)

// Parser turns a master timetable workbook into schedule entries.
// A Parser holds no state between calls and is safe for concurrent use.
type Parser struct {
	classifier   *Classifier
	lecturerRule LecturerRule
	logger       *log.Logger
}

type Option func(*Parser)

func WithDepartments(t DepartmentTable) Option {
	return func(p *Parser) { p.classifier = NewClassifier(t) }
}

func WithLecturerRule(rule LecturerRule) Option {
	return func(p *Parser) { p.lecturerRule = rule }
}

func WithLogger(l *log.Logger) Option {
	return func(p *Parser) { p.logger = l }
}

func NewParser(opts ...Option) *Parser {
	p := &Parser{
		classifier:   NewClassifier(DefaultDepartments()),
		lecturerRule: LastEntryIsLecturer,
		logger:       log.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ParseSchedule parses data with the default departments and lecturer rule.
func ParseSchedule(data []byte) ([]model.ScheduleEntry, error) {
	return NewParser().ParseSchedule(data)
}

// ComputeFreeSlots walks data with the default lecturer rule.
func ComputeFreeSlots(data []byte) ([]model.FreeSlot, error) {
	return NewParser().ComputeFreeSlots(data)
}

func (p *Parser) open(data []byte) ([]sheetGrid, error) {
	grids, err := readWorkbook(data, p.logger)
	if err != nil {
		p.logger.Printf("sheetparser: %v", err)
		return nil, errors.WithStack(ErrParseFailed)
	}
	return grids, nil
}

// ParseSchedule returns one entry per class cell, in sheet, row, column order.
// Cells that cannot be decoded are skipped. ErrNoScheduleData is returned
// when nothing at all could be read.
func (p *Parser) ParseSchedule(data []byte) ([]model.ScheduleEntry, error) {
	grids, err := p.open(data)
	if err != nil {
		return nil, err
	}

	var entries []model.ScheduleEntry
	walk(grids, p.lecturerRule, func(pc placedCell) {
		class := p.classifier.Classify(pc.cell.CourseCode)
		entries = append(entries, model.ScheduleEntry{
			Day:         pc.day,
			Room:        pc.room,
			Time:        CombineRange(pc.start, pc.end),
			CourseCode:  class.CourseCode,
			Lecturer:    pc.cell.Lecturer,
			Level:       class.Level,
			Departments: class.Departments,
		})
	})
	if len(entries) == 0 {
		return nil, errors.WithStack(ErrNoScheduleData)
	}
	return entries, nil
}

// ComputeFreeSlots returns every slot of every known room that holds no class.
// A room is known on a day once it holds at least one class that day.
func (p *Parser) ComputeFreeSlots(data []byte) ([]model.FreeSlot, error) {
	grids, err := p.open(data)
	if err != nil {
		return nil, err
	}

	occ := newOccupancy()
	walk(grids, p.lecturerRule, func(pc placedCell) {
		occ.mark(pc.day, pc.room, pc.start, pc.end)
	})
	return occ.freeSlots(), nil
}
