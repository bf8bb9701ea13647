package seed

type content struct {
	Category string
	Title    string
	Excerpt  string
	ImageURL string
}

var contentPool = []content{
	{
		Category: "Artificial Intelligence",
		Title:    "The Future of AI-Powered Business Solutions in 2025",
		Excerpt:  "Explore how artificial intelligence is transforming the way businesses operate, from automated workflows to intelligent decision-making systems that drive unprecedented efficiency.",
		ImageURL: "https://images.unsplash.com/photo-1677442136019-21780ecad995?w=3840&q=80",
	},
	{
		Category: "Startups",
		Title:    "From Idea to Launch: A Complete Guide for First-Time Founders",
		Excerpt:  "Everything you need to know about validating your startup idea, building an MVP, and securing your first customers in today's competitive market.",
		ImageURL: "https://images.unsplash.com/photo-1559136555-9303baea8ebd?w=3840&q=80",
	},
	{
		Category: "Innovation",
		Title:    "How Tech Leaders Are Connecting Visionaries with Solutions",
		Excerpt:  "Discover the platforms that match entrepreneurs with experienced technology officers to bring groundbreaking ideas to life faster than ever.",
		ImageURL: "https://images.unsplash.com/photo-1451187580459-43490279c0fa?w=3840&q=80",
	},
	{
		Category: "E-Commerce",
		Title:    "Why Zero-Commission Marketplaces Are the Future of Online Selling",
		Excerpt:  "Learn how innovative marketplace platforms are revolutionizing e-commerce by eliminating fees and empowering sellers worldwide.",
		ImageURL: "https://images.unsplash.com/photo-1556742049-0cfed4f6a45d?w=3840&q=80",
	},
	{
		Category: "Machine Learning",
		Title:    "Deep Learning Breakthroughs Reshaping Healthcare Diagnostics",
		Excerpt:  "How neural networks are achieving superhuman accuracy in detecting diseases, from cancer screening to rare genetic conditions.",
		ImageURL: "https://images.unsplash.com/photo-1576091160399-112ba8d25d1d?w=3840&q=80",
	},
	{
		Category: "Cybersecurity",
		Title:    "Zero Trust Architecture: The New Standard for Enterprise Security",
		Excerpt:  "Understanding why traditional perimeter-based security is obsolete and how organizations are adopting zero trust frameworks.",
		ImageURL: "https://images.unsplash.com/photo-1550751827-4bd374c3f58b?w=3840&q=80",
	},
	{
		Category: "Cloud Computing",
		Title:    "Multi-Cloud Strategies: Balancing Performance and Cost",
		Excerpt:  "Enterprise architects reveal their approaches to leveraging multiple cloud providers while avoiding vendor lock-in.",
		ImageURL: "https://images.unsplash.com/photo-1544197150-b99a580bb7a8?w=3840&q=80",
	},
	{
		Category: "Blockchain",
		Title:    "Enterprise Blockchain Adoption Reaches Critical Mass",
		Excerpt:  "Fortune 500 companies are finally moving beyond pilots to production-grade blockchain implementations for supply chain and finance.",
		ImageURL: "https://images.unsplash.com/photo-1639762681485-074b7f938ba0?w=3840&q=80",
	},
	{
		Category: "Fintech",
		Title:    "The Rise of Embedded Finance in SaaS Platforms",
		Excerpt:  "How software companies are integrating financial services directly into their products, creating new revenue streams.",
		ImageURL: "https://images.unsplash.com/photo-1563986768609-322da13575f3?w=3840&q=80",
	},
	{
		Category: "Remote Work",
		Title:    "Async-First Culture: Building High-Performance Distributed Teams",
		Excerpt:  "The strategies top remote companies use to maintain productivity and culture without constant video meetings.",
		ImageURL: "https://images.unsplash.com/photo-1587560699334-cc4ff634909a?w=3840&q=80",
	},
	{
		Category: "Data Science",
		Title:    "Real-Time Analytics at Scale: Modern Data Pipeline Architecture",
		Excerpt:  "Engineering teams share their approaches to processing millions of events per second with sub-second latency.",
		ImageURL: "https://images.unsplash.com/photo-1551288049-bebda4e38f71?w=3840&q=80",
	},
	{
		Category: "DevOps",
		Title:    "Platform Engineering: The Evolution Beyond DevOps",
		Excerpt:  "How internal developer platforms are reducing cognitive load and accelerating software delivery at enterprise scale.",
		ImageURL: "https://images.unsplash.com/photo-1558494949-ef010cbdcc31?w=3840&q=80",
	},
	{
		Category: "Quantum Computing",
		Title:    "Quantum Advantage Achieved: What It Means for Industry",
		Excerpt:  "Recent breakthroughs in quantum error correction are bringing practical quantum computing closer to reality.",
		ImageURL: "https://images.unsplash.com/photo-1635070041078-e363dbe005cb?w=3840&q=80",
	},
	{
		Category: "Sustainability",
		Title:    "Green Tech: Carbon-Neutral Data Centers Lead the Way",
		Excerpt:  "Major cloud providers reveal their roadmaps to achieving net-zero emissions across global infrastructure.",
		ImageURL: "https://images.unsplash.com/photo-1473341304170-971dccb5ac1e?w=3840&q=80",
	},
	{
		Category: "Mobile Development",
		Title:    "Cross-Platform Frameworks: React Native vs Flutter in 2025",
		Excerpt:  "A comprehensive comparison of the leading mobile development frameworks based on performance, developer experience, and ecosystem.",
		ImageURL: "https://images.unsplash.com/photo-1512941937669-90a1b58e7e9c?w=3840&q=80",
	},
	{
		Category: "Automation",
		Title:    "Intelligent Process Automation Transforms Back-Office Operations",
		Excerpt:  "How RPA combined with AI is eliminating manual data entry and reducing processing times by 90%.",
		ImageURL: "https://images.unsplash.com/photo-1485827404703-89b55fcc595e?w=3840&q=80",
	},
	{
		Category: "AI Ethics",
		Title:    "Responsible AI: Building Fairness Into Machine Learning Models",
		Excerpt:  "Techniques for detecting and mitigating bias in AI systems before they impact real-world decisions.",
		ImageURL: "https://images.unsplash.com/photo-1620712943543-bcc4688e7485?w=3840&q=80",
	},
	{
		Category: "Edge Computing",
		Title:    "5G and Edge: Enabling Real-Time AI at the Network Edge",
		Excerpt:  "How telecom companies are deploying AI inference capabilities closer to users for ultra-low latency applications.",
		ImageURL: "https://images.unsplash.com/photo-1558618666-fcd25c85cd64?w=3840&q=80",
	},
	{
		Category: "API Economy",
		Title:    "GraphQL Federation: Scaling API Architecture for Microservices",
		Excerpt:  "Large organizations share their experiences implementing federated GraphQL across hundreds of services.",
		ImageURL: "https://images.unsplash.com/photo-1516321318423-f06f85e504b3?w=3840&q=80",
	},
	{
		Category: "Venture Capital",
		Title:    "AI Startups Lead Q4 Funding Despite Market Uncertainty",
		Excerpt:  "Analysis of venture capital trends shows continued strong investment in artificial intelligence and automation.",
		ImageURL: "https://images.unsplash.com/photo-1579532537598-459ecdaf39cc?w=3840&q=80",
	},
	{
		Category: "Digital Transformation",
		Title:    "Legacy Modernization: Strategies for Migrating Mainframe Systems",
		Excerpt:  "Banks and insurers share lessons learned from decades-long efforts to modernize core systems.",
		ImageURL: "https://images.unsplash.com/photo-1518770660439-4636190af475?w=3840&q=80",
	},
	{
		Category: "IoT",
		Title:    "Industrial IoT Security: Protecting Connected Manufacturing",
		Excerpt:  "Best practices for securing operational technology networks against increasingly sophisticated threats.",
		ImageURL: "https://images.unsplash.com/photo-1558346490-a72e53ae2d4f?w=3840&q=80",
	},
	{
		Category: "SaaS",
		Title:    "Product-Led Growth: The New Playbook for B2B Software",
		Excerpt:  "How successful SaaS companies are using free trials and self-service to drive adoption at scale.",
		ImageURL: "https://images.unsplash.com/photo-1460925895917-afdab827c52f?w=3840&q=80",
	},
	{
		Category: "Robotics",
		Title:    "Warehouse Automation: Robots and Humans Working Together",
		Excerpt:  "Inside Amazon and Walmart's next-generation fulfillment centers where collaborative robots boost efficiency.",
		ImageURL: "https://images.unsplash.com/photo-1485827404703-89b55fcc595e?w=3840&q=80",
	},
	{
		Category: "Natural Language",
		Title:    "Large Language Models Transform Enterprise Knowledge Management",
		Excerpt:  "How companies are using GPT and similar models to unlock value from unstructured corporate data.",
		ImageURL: "https://images.unsplash.com/photo-1655720828018-edd2daec9349?w=3840&q=80",
	},
	{
		Category: "Web3",
		Title:    "Decentralized Identity: The Future of Digital Authentication",
		Excerpt:  "Self-sovereign identity solutions promise to give users control over their personal data across platforms.",
		ImageURL: "https://images.unsplash.com/photo-1639322537228-f710d846310a?w=3840&q=80",
	},
	{
		Category: "AR/VR",
		Title:    "Spatial Computing: Apple Vision Pro Sparks Enterprise Interest",
		Excerpt:  "Early adopters in healthcare, manufacturing, and design share their experiences with spatial computing.",
		ImageURL: "https://images.unsplash.com/photo-1617802690992-15d93263d3a9?w=3840&q=80",
	},
	{
		Category: "Observability",
		Title:    "OpenTelemetry Becomes the Standard for Distributed Tracing",
		Excerpt:  "The open-source observability framework reaches production maturity as cloud-native adoption accelerates.",
		ImageURL: "https://images.unsplash.com/photo-1551288049-bebda4e38f71?w=3840&q=80",
	},
	{
		Category: "AI Infrastructure",
		Title:    "GPU Shortage Drives Innovation in AI Hardware Alternatives",
		Excerpt:  "Startups develop specialized chips and novel architectures to meet surging demand for AI compute.",
		ImageURL: "https://images.unsplash.com/photo-1591238372338-22d30c883a86?w=3840&q=80",
	},
	{
		Category: "Privacy Tech",
		Title:    "Privacy-Preserving AI: Federated Learning Goes Mainstream",
		Excerpt:  "Healthcare and finance sectors adopt techniques that enable AI training without exposing sensitive data.",
		ImageURL: "https://images.unsplash.com/photo-1563013544-824ae1b704d3?w=3840&q=80",
	},
	{
		Category: "Developer Tools",
		Title:    "AI Coding Assistants Boost Developer Productivity by 40%",
		Excerpt:  "Studies confirm that GitHub Copilot and similar tools significantly accelerate software development.",
		ImageURL: "https://images.unsplash.com/photo-1461749280684-dccba630e2f6?w=3840&q=80",
	},
	{
		Category: "Digital Payments",
		Title:    "Central Bank Digital Currencies: Global Adoption Accelerates",
		Excerpt:  "Over 100 countries now exploring CBDCs as the future of money takes shape.",
		ImageURL: "https://images.unsplash.com/photo-1563986768494-4dee2763ff3f?w=3840&q=80",
	},
}
