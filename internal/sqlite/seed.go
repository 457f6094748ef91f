package sqlite

import (
	"context"
	"fmt"
	"time"
)

// Fixture dataset matching the demo workspace: 8 companies, 12 contacts,
// 12 deals, 10 activities, 6 notes. Ordinal references (companyOrd,
// contactOrd, dealOrd) are 1-based positions in these slices; 0 means not
// attached.

type seedCompany struct {
	name, industry, website, size, revenue, location, logoColor string
}

type seedContact struct {
	firstName, lastName, email, phone, title string
	companyOrd                               int
	status, avatarColor, lastContacted       string
}

type seedDeal struct {
	title                  string
	value                  float64
	stage                  string
	probability            int
	contactOrd, companyOrd int
	expectedClose          string
	description            string
}

type seedActivity struct {
	typ, title, description string
	contactOrd, dealOrd     int
	dueDate                 string
	completed               bool
	priority                string
}

type seedNote struct {
	content             string
	contactOrd, dealOrd int
}

var avatarColors = []string{
	"#c9a962", "#7d8b7a", "#8b7355", "#6b7c8f", "#9b7a7a",
	"#7a8b6b", "#8b6b7a", "#6b8b8b", "#a08050", "#7a6b8b",
}

var seedCompanies = []seedCompany{
	{"Meridian Ventures", "Venture Capital", "meridianvc.com", "50-100", "$50M-100M", "San Francisco, CA", "#c9a962"},
	{"Atlas Architecture", "Architecture", "atlasarch.co", "20-50", "$10M-25M", "New York, NY", "#7d8b7a"},
	{"Novus Therapeutics", "Biotechnology", "novusthera.com", "100-250", "$100M-250M", "Boston, MA", "#8b7355"},
	{"Cipher Security", "Cybersecurity", "ciphersec.io", "50-100", "$25M-50M", "Austin, TX", "#6b7c8f"},
	{"Verdant Foods", "Food & Beverage", "verdantfoods.com", "250-500", "$250M-500M", "Chicago, IL", "#7a8b6b"},
	{"Lumen Media", "Digital Media", "lumenmedia.co", "20-50", "$5M-10M", "Los Angeles, CA", "#9b7a7a"},
	{"Stratos Aviation", "Aerospace", "stratosav.com", "500-1000", "$500M+", "Seattle, WA", "#6b8b8b"},
	{"Helix Consulting", "Management Consulting", "helixconsult.com", "100-250", "$50M-100M", "Washington, DC", "#8b6b7a"},
}

var seedContacts = []seedContact{
	{"Alexandra", "Chen", "a.chen@meridianvc.com", "+1 (415) 555-0142", "Managing Partner", 1, "active", avatarColors[0], "2024-12-08"},
	{"Marcus", "Webb", "m.webb@atlasarch.co", "+1 (212) 555-0198", "Principal Architect", 2, "active", avatarColors[1], "2024-12-05"},
	{"Dr. Sarah", "Okonkwo", "s.okonkwo@novusthera.com", "+1 (617) 555-0234", "Chief Scientific Officer", 3, "active", avatarColors[2], "2024-12-09"},
	{"James", "Morrison", "j.morrison@ciphersec.io", "+1 (512) 555-0187", "VP of Engineering", 4, "active", avatarColors[3], "2024-12-01"},
	{"Elena", "Vasquez", "e.vasquez@verdantfoods.com", "+1 (312) 555-0156", "Director of Procurement", 5, "active", avatarColors[4], "2024-12-07"},
	{"David", "Park", "d.park@lumenmedia.co", "+1 (310) 555-0223", "Creative Director", 6, "active", avatarColors[5], "2024-11-28"},
	{"Natasha", "Volkov", "n.volkov@stratosav.com", "+1 (206) 555-0189", "Chief Operations Officer", 7, "active", avatarColors[6], "2024-12-10"},
	{"Robert", "Fitzgerald", "r.fitzgerald@helixconsult.com", "+1 (202) 555-0145", "Senior Partner", 8, "active", avatarColors[7], "2024-12-03"},
	{"Priya", "Sharma", "p.sharma@meridianvc.com", "+1 (415) 555-0167", "Investment Analyst", 1, "active", avatarColors[8], "2024-12-06"},
	{"Michael", "Torres", "m.torres@novusthera.com", "+1 (617) 555-0278", "Business Development Lead", 3, "lead", avatarColors[9], "2024-11-25"},
	{"Catherine", "Dubois", "c.dubois@atlasarch.co", "+1 (212) 555-0234", "Project Manager", 2, "active", avatarColors[0], "2024-12-04"},
	{"Jonathan", "Blackwell", "j.blackwell@ciphersec.io", "+1 (512) 555-0145", "CEO", 4, "active", avatarColors[1], "2024-12-09"},
}

var seedDeals = []seedDeal{
	{"Enterprise Security Suite", 450000, "negotiation", 75, 4, 4, "2025-01-15", "Full enterprise deployment of security monitoring and threat detection suite."},
	{"Series B Investment", 2500000, "proposal", 40, 1, 1, "2025-02-28", "Lead investor position in Series B funding round."},
	{"Headquarters Redesign", 180000, "qualified", 60, 2, 2, "2025-03-01", "Complete interior architecture redesign for new headquarters."},
	{"Clinical Trial Software", 320000, "won", 100, 3, 3, "2024-12-01", "Custom software platform for managing Phase 3 clinical trials."},
	{"Supply Chain Platform", 275000, "proposal", 55, 5, 5, "2025-01-30", "End-to-end supply chain management and tracking system."},
	{"Brand Campaign 2025", 95000, "lead", 20, 6, 6, "2025-04-15", "Comprehensive digital marketing and brand refresh campaign."},
	{"Fleet Management System", 890000, "negotiation", 80, 7, 7, "2025-01-20", "Real-time fleet tracking and maintenance scheduling system."},
	{"Digital Transformation", 520000, "qualified", 45, 8, 8, "2025-02-15", "Strategic consulting for complete digital transformation initiative."},
	{"Data Analytics Platform", 150000, "lead", 15, 9, 1, "2025-05-01", "Custom analytics dashboard for portfolio company monitoring."},
	{"Security Audit", 45000, "won", 100, 12, 4, "2024-11-15", "Comprehensive security audit and penetration testing."},
	{"Research Collaboration", 680000, "proposal", 50, 10, 3, "2025-03-30", "Joint research partnership for new therapeutic development."},
	{"Office Expansion", 220000, "lost", 0, 11, 2, "2024-10-01", "Design services for new satellite office location."},
}

var seedActivities = []seedActivity{
	{"call", "Follow-up call with Alexandra", "Discuss Series B terms and timeline", 1, 2, "2024-12-12 10:00:00", false, "high"},
	{"meeting", "Contract review meeting", "Final contract negotiation with legal teams", 4, 1, "2024-12-13 14:00:00", false, "high"},
	{"email", "Send revised proposal", "Updated pricing and scope for headquarters redesign", 2, 3, "2024-12-11 17:00:00", false, "medium"},
	{"task", "Prepare demo environment", "Set up sandbox for supply chain platform demo", 5, 5, "2024-12-14 09:00:00", false, "medium"},
	{"call", "Quarterly check-in", "Regular relationship maintenance call", 3, 4, "2024-12-10 15:30:00", true, "low"},
	{"meeting", "Strategy presentation", "Present digital transformation roadmap", 8, 8, "2024-12-16 11:00:00", false, "high"},
	{"task", "Update CRM records", "Add meeting notes and update deal stages", 0, 0, "2024-12-11 18:00:00", false, "low"},
	{"email", "Introduction email", "Initial outreach for brand campaign opportunity", 6, 6, "2024-12-12 09:00:00", false, "medium"},
	{"meeting", "Technical requirements review", "Deep dive on fleet management system specs", 7, 7, "2024-12-15 10:00:00", false, "high"},
	{"call", "Renewal discussion", "Discuss contract renewal and expansion", 12, 10, "2024-12-17 14:00:00", false, "medium"},
}

var seedNotes = []seedNote{
	{"Alexandra mentioned they are particularly interested in AI/ML startups. She has a strong network in the healthcare tech space.", 1, 2},
	{"Marcus prefers detailed technical specifications upfront. Values sustainable design practices highly.", 2, 3},
	{"Dr. Okonkwo is very detail-oriented. Requires extensive documentation for all technical implementations.", 3, 4},
	{"James is the key technical decision maker. Jonathan (CEO) handles final budget approval.", 4, 1},
	{"Verdant is expanding rapidly. Elena mentioned potential for multiple future projects if this goes well.", 5, 5},
	{"Fleet management is a critical pain point for Stratos. Current system causing significant delays.", 7, 7},
}

// Seed populates an empty store with the fixture dataset inside a single
// transaction. It reports whether seeding ran: when the companies table is
// non-empty the store is considered already seeded and nothing happens. A
// failure partway through rolls the whole batch back.
func (db *DB) Seed(ctx context.Context) (bool, error) {
	var count int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM companies`).Scan(&count); err != nil {
		return false, fmt.Errorf("checking seed state: %w", err)
	}
	if count > 0 {
		return false, nil
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("starting seed transaction: %w", err)
	}
	defer tx.Rollback()

	now := time.Now()

	companyIDs := make([]int64, 0, len(seedCompanies))
	for _, c := range seedCompanies {
		result, err := tx.ExecContext(ctx, `
			INSERT INTO companies (name, industry, website, size, revenue, location, logo_color, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			c.name, c.industry, c.website, c.size, c.revenue, c.location, c.logoColor, now, now,
		)
		if err != nil {
			return false, fmt.Errorf("seeding companies: %w", err)
		}
		id, err := result.LastInsertId()
		if err != nil {
			return false, fmt.Errorf("seeding companies: %w", err)
		}
		companyIDs = append(companyIDs, id)
	}

	contactIDs := make([]int64, 0, len(seedContacts))
	for _, c := range seedContacts {
		lastContacted, err := time.ParseInLocation("2006-01-02", c.lastContacted, time.Local)
		if err != nil {
			return false, fmt.Errorf("seeding contacts: %w", err)
		}
		result, err := tx.ExecContext(ctx, `
			INSERT INTO contacts (first_name, last_name, email, phone, title, company_id, status, avatar_color, last_contacted, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			c.firstName, c.lastName, c.email, c.phone, c.title, ordinalID(companyIDs, c.companyOrd),
			c.status, c.avatarColor, lastContacted, now, now,
		)
		if err != nil {
			return false, fmt.Errorf("seeding contacts: %w", err)
		}
		id, err := result.LastInsertId()
		if err != nil {
			return false, fmt.Errorf("seeding contacts: %w", err)
		}
		contactIDs = append(contactIDs, id)
	}

	dealIDs := make([]int64, 0, len(seedDeals))
	for _, d := range seedDeals {
		expectedClose, err := time.ParseInLocation("2006-01-02", d.expectedClose, time.Local)
		if err != nil {
			return false, fmt.Errorf("seeding deals: %w", err)
		}
		result, err := tx.ExecContext(ctx, `
			INSERT INTO deals (title, value, stage, probability, contact_id, company_id, expected_close, description, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			d.title, d.value, d.stage, d.probability, ordinalID(contactIDs, d.contactOrd),
			ordinalID(companyIDs, d.companyOrd), expectedClose, d.description, now, now,
		)
		if err != nil {
			return false, fmt.Errorf("seeding deals: %w", err)
		}
		id, err := result.LastInsertId()
		if err != nil {
			return false, fmt.Errorf("seeding deals: %w", err)
		}
		dealIDs = append(dealIDs, id)
	}

	for _, a := range seedActivities {
		dueDate, err := time.ParseInLocation("2006-01-02 15:04:05", a.dueDate, time.Local)
		if err != nil {
			return false, fmt.Errorf("seeding activities: %w", err)
		}
		_, err = tx.ExecContext(ctx, `
			INSERT INTO activities (type, title, description, contact_id, deal_id, due_date, completed, priority, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			a.typ, a.title, a.description, ordinalID(contactIDs, a.contactOrd),
			ordinalID(dealIDs, a.dealOrd), dueDate, a.completed, a.priority, now,
		)
		if err != nil {
			return false, fmt.Errorf("seeding activities: %w", err)
		}
	}

	for _, n := range seedNotes {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO notes (content, contact_id, deal_id, created_at)
			VALUES (?, ?, ?, ?)`,
			n.content, ordinalID(contactIDs, n.contactOrd), ordinalID(dealIDs, n.dealOrd), now,
		)
		if err != nil {
			return false, fmt.Errorf("seeding notes: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("committing seed transaction: %w", err)
	}

	return true, nil
}

// ordinalID resolves a 1-based fixture ordinal to the inserted row's ID.
// Ordinal 0 means no reference.
func ordinalID(ids []int64, ord int) *int64 {
	if ord == 0 {
		return nil
	}
	return &ids[ord-1]
}
