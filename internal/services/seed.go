package services

import (
	"fmt"
	"time"

	"github.com/studenthub/apiserver/types"
)

// samplePosts is the starter data set: one post of each kind.
func samplePosts(now time.Time) []types.Post {
	return []types.Post{
		{
			Kind:        types.PostKindNote,
			Title:       "Discrete Mathematics Notes - Graph Theory",
			Excerpt:     "Download comprehensive notes on Graph Theory for quick revision.",
			Author:      "Ananya Sharma",
			Category:    "Notes",
			ReadTime:    "2 min read",
			Tags:        []string{"Mathematics", "Graph Theory", "CS201"},
			DocumentURL: "https://res.cloudinary.com/demo/raw/upload/v1710000000/graph_theory_notes.pdf",
			Content:     "These notes cover all important concepts in Graph Theory for CS201.",
			Likes:       []types.Like{},
			Date:        now,
		},
		{
			Kind:         types.PostKindJob,
			Title:        "Software Engineer Internship at Google",
			Excerpt:      "Exciting internship opportunity for 3rd year students. Apply now!",
			Author:       "Placement Cell",
			Category:     "Jobs",
			ReadTime:     "1 min read",
			JobLink:      "https://careers.google.com/jobs/results/123456-software-engineer-intern/",
			ReferralInfo: "Contact alumni Priya S. for referral.",
			Content:      "Google is hiring interns for Summer 2024. See link for details.",
			Likes:        []types.Like{},
			Date:         now,
		},
		{
			Kind:     types.PostKindThread,
			Title:    "How to prepare for GATE CS?",
			Excerpt:  "Share your tips and resources for GATE Computer Science preparation.",
			Author:   "Rahul Verma",
			Category: "Threads",
			ReadTime: "3 min read",
			Content:  "Let's discuss the best strategies and materials for GATE CS.",
			Likes:    []types.Like{},
			Comments: []types.Comment{
				{UserID: "user_sneha", UserName: "Sneha", Text: "Start with previous year papers!", CreatedAt: now},
				{UserID: "user_amit", UserName: "Amit", Text: "Use NPTEL lectures for tough topics.", CreatedAt: now},
			},
			Date: now,
		},
	}
}

type jobSeed struct {
	title    string
	excerpt  string
	link     string
	referral string
	content  string
}

var jobSeeds = []jobSeed{
	{
		title:    "Backend Developer Intern at Microsoft",
		excerpt:  "Join Microsoft as a backend intern. Apply now!",
		link:     "https://careers.microsoft.com/us/en/job/12345/Backend-Developer-Intern",
		referral: "Contact alumni Ravi K. for referral.",
		content:  "Microsoft is hiring backend interns for Summer 2024. See link for details.",
	},
	{
		title:    "Data Analyst - Amazon",
		excerpt:  "Amazon is looking for Data Analysts. Freshers welcome!",
		link:     "https://www.amazon.jobs/en/jobs/67890/Data-Analyst",
		referral: "Reach out to alumni Sneha S. for referral.",
		content:  "Apply for Data Analyst roles at Amazon. Great for freshers.",
	},
	{
		title:    "Frontend Engineer - Swiggy",
		excerpt:  "Swiggy is hiring frontend engineers. Apply today!",
		link:     "https://careers.swiggy.com/job/54321/Frontend-Engineer",
		referral: "Contact Mohit for referral.",
		content:  "Swiggy is looking for frontend engineers for their web team.",
	},
	{
		title:    "Machine Learning Intern - TCS",
		excerpt:  "TCS is offering ML internships for students.",
		link:     "https://www.tcs.com/careers/ml-intern",
		referral: "Contact Deekshith for referral.",
		content:  "Work on real ML projects at TCS. Apply now!",
	},
	{
		title:    "Software Engineer - Infosys",
		excerpt:  "Infosys is hiring software engineers. Don't miss out!",
		link:     "https://careers.infosys.com/job/98765/Software-Engineer",
		referral: "Contact Akhilesh for referral.",
		content:  "Infosys is looking for software engineers for multiple teams.",
	},
	{
		title:    "UI/UX Designer - Zoho",
		excerpt:  "Zoho is hiring UI/UX Designers. Creative minds wanted!",
		link:     "https://careers.zohocorp.com/jobs/24680/UI-UX-Designer",
		referral: "Contact Tanukj for referral.",
		content:  "Zoho is looking for creative UI/UX designers.",
	},
	{
		title:    "Cloud Engineer - IBM",
		excerpt:  "IBM is hiring Cloud Engineers. Apply for exciting cloud projects!",
		link:     "https://careers.ibm.com/job/13579/Cloud-Engineer",
		referral: "Contact Rinaaz for referral.",
		content:  "IBM is looking for Cloud Engineers to work on next-gen cloud solutions.",
	},
	{
		title:    "DevOps Engineer - Flipkart",
		excerpt:  "Flipkart is hiring DevOps Engineers. Join the e-commerce revolution!",
		link:     "https://careers.flipkart.com/job/24680/DevOps-Engineer",
		referral: "Contact Mohit for referral.",
		content:  "Flipkart is looking for DevOps Engineers for their cloud team.",
	},
	{
		title:    "Cybersecurity Analyst - Deloitte",
		excerpt:  "Deloitte is hiring Cybersecurity Analysts. Secure the digital world!",
		link:     "https://careers.deloitte.com/job/35791/Cybersecurity-Analyst",
		referral: "Contact Akhilesh for referral.",
		content:  "Deloitte is looking for Cybersecurity Analysts for their security team.",
	},
	{
		title:    "Product Manager - Byju's",
		excerpt:  "Byju's is hiring Product Managers. Lead the next wave in EdTech!",
		link:     "https://careers.byjus.com/job/46802/Product-Manager",
		referral: "Contact Tanukj for referral.",
		content:  "Byju's is looking for Product Managers to drive innovation.",
	},
	{
		title:    "Android Developer - Ola",
		excerpt:  "Ola is hiring Android Developers. Build the future of mobility!",
		link:     "https://careers.ola.com/job/57913/Android-Developer",
		referral: "Contact Deekshith for referral.",
		content:  "Ola is looking for Android Developers for their mobile team.",
	},
	{
		title:    "QA Engineer - Paytm",
		excerpt:  "Paytm is hiring QA Engineers. Ensure quality at scale!",
		link:     "https://careers.paytm.com/job/68024/QA-Engineer",
		referral: "Contact Bahrath M for referral.",
		content:  "Paytm is looking for QA Engineers to test and improve their products.",
	},
}

var seedAuthors = []struct {
	name string
	id   string
}{
	{"Rinaaz", "rinaaz1"},
	{"Mohit", "mohit2"},
	{"Akhilesh", "akhilesh3"},
	{"Tanukj", "tanukj4"},
	{"Bahrath M", "bahrathm5"},
	{"Deekshith", "deekshith6"},
}

var seedCategories = []string{
	"AI-ML", "Programming", "Programming", "Telecommunications", "Study Tips", "Career", "Other",
}

// expandedPosts builds the larger seed set: every job seed plus six
// alternating note/thread posts, merged one-for-one so the stored order
// already mixes jobs with the rest.
func expandedPosts(now time.Time) []types.Post {
	jobs := make([]types.Post, 0, len(jobSeeds))
	for _, seed := range jobSeeds {
		jobs = append(jobs, types.Post{
			Kind:         types.PostKindJob,
			Title:        seed.title,
			Excerpt:      seed.excerpt,
			Author:       "Placement Cell",
			Category:     "Jobs",
			ReadTime:     "1 min read",
			JobLink:      seed.link,
			ReferralInfo: seed.referral,
			Content:      seed.content,
			Likes:        []types.Like{},
			Date:         now,
		})
	}

	others := make([]types.Post, 0, 6)
	for i := 0; i < 6; i++ {
		author := seedAuthors[i%len(seedAuthors)]
		category := seedCategories[i%len(seedCategories)]
		kind := types.PostKindNote
		title := "Note"
		if i%2 == 1 {
			kind = types.PostKindThread
			title = "Thread"
		}
		others = append(others, types.Post{
			Kind:     kind,
			Title:    fmt.Sprintf("Sample %s Post %d", title, i+1),
			Excerpt:  fmt.Sprintf("This is a sample excerpt for %s post %d.", kind, i+1),
			Author:   author.name,
			AuthorID: author.id,
			Category: category,
			ReadTime: fmt.Sprintf("%d min read", 3+i%7),
			Tags:     []string{category, "Sample"},
			Content:  fmt.Sprintf("This is the full content of sample %s post %d.", kind, i+1),
			Likes:    []types.Like{},
			Comments: []types.Comment{},
			Date:     now,
		})
	}

	merged := make([]types.Post, 0, len(jobs)+len(others))
	for i := 0; i < len(jobs) || i < len(others); i++ {
		if i < len(jobs) {
			merged = append(merged, jobs[i])
		}
		if i < len(others) {
			merged = append(merged, others[i])
		}
	}
	return merged
}
