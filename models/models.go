package models

// This file serves as the central export point for all database models
// Import this package to access all model types

// All models are automatically exported from their respective files:
// - User, RefreshToken, PermanentToken from user.go
// - Client from client.go
// - Assessment, AssessmentLine, AssessmentTemplate from assessment.go
// - Project, ProjectPhase, ProjectMilestone, ProjectDeliverable, ProjectTask from project.go
// - Consultant, Skill from consultant.go

// Database schema overview:
// 1. users - Staff accounts guarding the API (cookie-based authentication)
// 2. clients - Consulting client companies with stored derived maturity metrics
// 3. assessments / assessment_lines - Scored digital-maturity questionnaires
// 4. assessment_templates - Catalog of active questions copied into new assessments
// 5. projects - Transformation engagements linking a client and consultants
// 6. project_phases / project_milestones / project_deliverables / project_tasks -
//    execution breakdown; phase progress rolls up into project progress
// 7. consultants / skills - Staffing resources referenced by assessments and projects
