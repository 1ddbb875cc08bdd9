package i18n

var translations = map[Language]map[string]string{
	English: {
		// Login Screen
		"email":           "Email",
		"password":        "Password",
		"login":           "Login",
		"forgotPassword":  "Forgot Password?",
		"noAccount":       "Don't have an Account?",
		"register":        "Register",
		"fillAllFields":   "Please fill in all fields",
		"invalidEmail":    "Please enter a valid email address",
		"invalidPassword": "Password must be at least 6 characters long",
		// Register Screen
		"fullname":            "Fullname",
		"confirmPassword":     "Confirm Password",
		"allFieldsRequired":   "All fields are required",
		"registrationSuccess": "Registration Successful",
		// Forgot Password Screen
		"forgotPasswordTitle":  "Forgot Password",
		"enterEmail":           "Enter your email to receive a verification code",
		"sendCode":             "Send Code",
		"enterCode":            "Enter the verification code sent to your email",
		"verifyCode":           "Verify Code",
		"verificationCodeSent": "A verification code has been sent to your email.",
		"codeVerified":         "Code verified! You can now reset your password.",
		// Reset Password Screen
		"resetPassword":                        "Reset Password",
		"newPassword":                          "New Password",
		"confirmNewPassword":                   "Confirm New Password",
		"passwordsDoNotMatch":                  "Passwords do not match",
		"passwordResetSuccess":                 "Password reset successful",
		"passwordMustBeAtLeast6CharactersLong": "Password must be at least 6 characters long",
		// Dashboard Screen
		"guardCrops":         "Guard Your Crops,",
		"growConfidence":     "Grow with Confidence!",
		"corn":               "Corn",
		"rice":               "Rice",
		"tomato":             "Tomato",
		"captureLeaf":        "Capture image of a leaf to know more about your crop's condition",
		"history":            "History",
		"ratings":            "Ratings",
		"about":              "About",
		"logout":             "Logout",
		"logoutConfirmation": "Logout Confirmation",
		"logoutMessage":      "Are you sure you want to logout?",
		"logoutYes":          "Yes",
		"logoutNo":           "No",
		// About Screen
		"aboutTitle": "About",
		"welcome":    "Welcome to CropMD, the app designed to help you protect your crops and grow with confidence!",
		"easyToUse":  "With our easy-to-use interface, you can capture images of your crops to learn about common diseases and receive guidance on proper crop care.",
		"mission":    "Our mission is to empower farmers with modern tools and reliable insights to ensure a bountiful harvest every season.",
		"support":    "For support, suggestions, or feedback, please reach out to our team. We are constantly working to improve your experience.",
		"contactUs":  "Contact Us",
		// Review Screen
		"feedback":         "Feedback",
		"experience":       "How's your experience?",
		"feedbackHelp":     "Your feedback helps us improve our service",
		"tapToRate":        "Tap a star to rate",
		"poor":             "Poor",
		"fair":             "Fair",
		"good":             "Good",
		"veryGood":         "Very Good",
		"excellent":        "Excellent",
		"shareThoughts":    "Share your thoughts (optional):",
		"tellUs":           "Tell us what you think...",
		"submitReview":     "Submit Review",
		"updateReview":     "Update Review",
		"communityReviews": "Community Reviews",
		"seeOthers":        "See what others are saying",
		"noReviews":        "No reviews yet",
		"beFirst":          "Be the first to share your thoughts!",
		"thankYou":         "Thank You!",
		"feedbackHelps":    "Your feedback helps us serve you better.",
		"continue":         "Continue",
		"noComment":        "No comment provided.",
		// Camera Screen
		"savePhoto":   "Save Photo",
		"retakePhoto": "Retake Photo",

		// Web
		"scanHistory":           "Scan History",
		"noScanHistory":         "No scan history available.",
		"notFound":              "That review no longer exists.",
		"reviewDeleted":         "Review deleted.",
		"invalidRating":         "Please choose a rating from 1 to 5 stars.",
		"deleteReview":          "Delete",
		"editReview":            "Edit",
		"cancel":                "Cancel",
		"invalidCode":           "That verification code is not valid.",
		"accountExists":         "An account with that email already exists.",
		"invalidCredentials":    "Incorrect email or password.",
		"invalidPhone":          "Please enter a valid mobile number",
		"phone":                 "Mobile Number",
		"invalidPasswordStrong": "Password must be at least 8 characters, contain an uppercase letter and a number",
		"language":              "Tagalog",
		"capture":               "Capture",
	},
	Tagalog: {
		// Login Screen
		"email":           "Email",
		"password":        "Password",
		"login":           "Mag-login",
		"forgotPassword":  "Nakalimutan ang Password?",
		"noAccount":       "Walang Account?",
		"register":        "Magrehistro",
		"fillAllFields":   "Mangyaring punan ang lahat ng mga patlang",
		"invalidEmail":    "Mangyaring maglagay ng wastong email address",
		"invalidPassword": "Ang password ay dapat hindi bababa sa 6 na karakter",
		// Register Screen
		"fullname":            "Buong Pangalan",
		"confirmPassword":     "Kumpirmahin ang Password",
		"allFieldsRequired":   "Kinakailangan ang lahat ng mga patlang",
		"registrationSuccess": "Matagumpay ang Pagrehistro",
		// Forgot Password Screen
		"forgotPasswordTitle":  "Nakalimutan ang Password",
		"enterEmail":           "Ipasok ang iyong email upang makatanggap ng verification code",
		"sendCode":             "Ipadala ang Code",
		"enterCode":            "Ipasok ang verification code na ipinadala sa iyong email",
		"verifyCode":           "I-verify ang Code",
		"verificationCodeSent": "Ang verification code ay naipadala sa iyong email.",
		"codeVerified":         "Na-verify na ang code! Maaari mo nang i-reset ang iyong password.",
		// Reset Password Screen
		"resetPassword":                        "I-reset ang Password",
		"newPassword":                          "Bagong Password",
		"confirmNewPassword":                   "Kumpirmahin ang Bagong Password",
		"passwordsDoNotMatch":                  "Hindi magkatugma ang mga password",
		"passwordResetSuccess":                 "Matagumpay na na-reset ang password",
		"passwordMustBeAtLeast6CharactersLong": "Ang password ay dapat hindi bababa sa 6 na karakter",
		// Dashboard Screen
		"guardCrops":         "Bantayan ang Iyong Pananim,",
		"growConfidence":     "Lumago nang May Kumpiyansa!",
		"corn":               "Mais",
		"rice":               "Palay",
		"tomato":             "Kamatis",
		"captureLeaf":        "Kuhanan ng larawan ang dahon upang malaman ang kalagayan ng iyong pananim",
		"history":            "Kasaysayan",
		"ratings":            "Rating",
		"about":              "Tungkol",
		"logout":             "Mag-logout",
		"logoutConfirmation": "Pag-logout",
		"logoutMessage":      "Sigurado ka bang gusto mong mag-logout?",
		"logoutYes":          "Oo",
		"logoutNo":           "Hindi",
		// About Screen
		"aboutTitle": "Tungkol",
		"welcome":    "Maligayang pagdating sa CropMD, ang app na idinisenyo upang tulungan kang protektahan ang iyong mga pananim at lumago nang may kumpiyansa!",
		"easyToUse":  "Gamit ang aming madaling gamitin na interface, maaari mong kuhanan ng larawan ang iyong mga pananim upang matuto tungkol sa mga karaniwang sakit at makatanggap ng gabay sa tamang pangangalaga ng pananim.",
		"mission":    "Ang aming misyon ay bigyan ng kapangyarihan ang mga magsasaka ng mga modernong kagamitan at maaasahang kaalaman upang matiyak ang masaganang ani sa bawat panahon.",
		"support":    "Para sa suporta, mungkahi, o feedback, mangyaring makipag-ugnayan sa aming team. Patuloy kaming nagtatrabaho upang mapabuti ang iyong karanasan.",
		"contactUs":  "Makipag-ugnayan sa Amin",
		// Review Screen
		"feedback":         "Feedback",
		"experience":       "Kumusta ang iyong karanasan?",
		"feedbackHelp":     "Ang iyong feedback ay tumutulong sa amin na mapabuti ang aming serbisyo",
		"tapToRate":        "I-tap ang isang bituin para mag-rate",
		"poor":             "Mahina",
		"fair":             "Katamtaman",
		"good":             "Mabuti",
		"veryGood":         "Napakagaling",
		"excellent":        "Napakahusay",
		"shareThoughts":    "Ibahagi ang iyong mga saloobin (opsyonal):",
		"tellUs":           "Sabihin sa amin ang iyong iniisip...",
		"submitReview":     "Ipadala ang Review",
		"updateReview":     "I-update ang Review",
		"communityReviews": "Mga Review ng Komunidad",
		"seeOthers":        "Tingnan kung ano ang sinasabi ng iba",
		"noReviews":        "Wala pang mga review",
		"beFirst":          "Maging una na magbahagi ng iyong mga saloobin!",
		"thankYou":         "Salamat!",
		"feedbackHelps":    "Ang iyong feedback ay tumutulong sa amin na mas mapaglingkuran ka.",
		"continue":         "Magpatuloy",
		"noComment":        "Walang komento na ipinagbabaybayan.",
		// Camera Screen
		"savePhoto":   "I-save ang Larawan",
		"retakePhoto": "I-retake ang Larawan",

		// Web
		"scanHistory":           "Kasaysayan ng Scan",
		"noScanHistory":         "Wala pang kasaysayan ng scan.",
		"notFound":              "Wala na ang review na iyon.",
		"reviewDeleted":         "Nabura na ang review.",
		"invalidRating":         "Mangyaring pumili ng rating mula 1 hanggang 5 bituin.",
		"deleteReview":          "Burahin",
		"editReview":            "I-edit",
		"cancel":                "Kanselahin",
		"invalidCode":           "Hindi wasto ang verification code.",
		"accountExists":         "May account na gamit ang email na iyon.",
		"invalidCredentials":    "Mali ang email o password.",
		"invalidPhone":          "Mangyaring maglagay ng wastong mobile number",
		"phone":                 "Mobile Number",
		"invalidPasswordStrong": "Ang password ay dapat hindi bababa sa 8 karakter, may malaking titik at numero",
		"language":              "English",
		"capture":               "Kuhanan",
	},
}
