package catalog

import "github.com/amanshaikhx1/Auto-Dashboard/domain/core"

func def(id, name string, cat Category, vt ValueType, aliases, keywords []string) FieldDefinition {
	return FieldDefinition{
		ID:              core.FieldID(id),
		DisplayName:     name,
		Category:        cat,
		ExpectedType:    vt,
		Aliases:         aliases,
		KeywordPatterns: keywords,
	}
}

// builtinFields is the full catalog of recognized business fields. Declaration
// order matters: it is the tie-break order for equal-confidence candidates.
// Aliases may be written in any casing or separator style; both sides of a
// comparison pass through NormalizeName. Keyword patterns are substrings
// matched against the normalized column key.
var builtinFields = []FieldDefinition{
	// --- financial ---
	def("revenue", "Revenue", CategoryFinancial, TypeCurrency,
		[]string{"total revenue", "sales revenue", "income", "sales amount", "gross sales", "gmv", "turnover", "earnings"},
		[]string{"revenue", "sale"}),
	def("total_amount", "Total Amount", CategoryFinancial, TypeCurrency,
		[]string{"amount", "total", "total price", "grand total", "order total", "total value"},
		[]string{"amount", "total"}),
	def("profit", "Profit", CategoryFinancial, TypeCurrency,
		[]string{"gross profit", "net profit", "profit amount", "margin amount"},
		[]string{"profit"}),
	def("net_income", "Net Income", CategoryFinancial, TypeCurrency,
		[]string{"netincome", "net earnings", "bottom line"},
		[]string{"netincome"}),
	def("cost", "Cost", CategoryFinancial, TypeCurrency,
		[]string{"total cost", "cost amount", "expense amount", "spend"},
		[]string{"cost"}),
	def("cogs", "Cost of Goods Sold", CategoryFinancial, TypeCurrency,
		[]string{"cost of goods", "cost of sales", "cogs amount"},
		[]string{"cogs", "costofgood"}),
	def("expense", "Expense", CategoryFinancial, TypeCurrency,
		[]string{"expenses", "expenditure", "outgoing"},
		[]string{"expense"}),
	def("operating_expense", "Operating Expense", CategoryFinancial, TypeCurrency,
		[]string{"opex", "operating costs", "operational expense"},
		[]string{"opex", "operatingexpense"}),
	def("tax", "Tax", CategoryFinancial, TypeCurrency,
		[]string{"tax amount", "vat", "sales tax", "gst"},
		[]string{"tax", "vat"}),
	def("discount", "Discount", CategoryFinancial, TypeCurrency,
		[]string{"discount amount", "rebate", "markdown", "promo amount"},
		[]string{"discount", "rebate"}),
	def("price", "Price", CategoryFinancial, TypeCurrency,
		[]string{"item price", "selling price", "retail price", "sale price"},
		[]string{"price"}),
	def("unit_price", "Unit Price", CategoryFinancial, TypeCurrency,
		[]string{"price per unit", "unit cost", "price each", "per unit"},
		[]string{"unitprice", "perunit"}),
	def("profit_margin", "Profit Margin", CategoryFinancial, TypePercentage,
		[]string{"margin", "margin percent", "margin pct", "gross margin"},
		[]string{"margin"}),
	def("cash_flow", "Cash Flow", CategoryFinancial, TypeCurrency,
		[]string{"cashflow", "net cash", "cash position"},
		[]string{"cash"}),
	def("budget", "Budget", CategoryFinancial, TypeCurrency,
		[]string{"budget amount", "allocated budget", "planned spend"},
		[]string{"budget"}),
	def("invoice_amount", "Invoice Amount", CategoryFinancial, TypeCurrency,
		[]string{"invoice total", "invoice value", "billed amount", "billing amount"},
		[]string{"invoice", "billed"}),
	def("payment_amount", "Payment Amount", CategoryFinancial, TypeCurrency,
		[]string{"payment", "paid amount", "amount paid", "payment total"},
		[]string{"payment", "paid"}),
	def("refund_amount", "Refund Amount", CategoryFinancial, TypeCurrency,
		[]string{"refund", "refunded", "chargeback amount"},
		[]string{"refund", "chargeback"}),
	def("payment_method", "Payment Method", CategoryFinancial, TypeCategorical,
		[]string{"payment type", "pay method", "tender type", "payment mode"},
		[]string{"paymentmethod", "paymenttype"}),
	def("exchange_rate", "Exchange Rate", CategoryFinancial, TypeNumber,
		[]string{"fx rate", "currency rate", "conversion rate fx"},
		[]string{"exchangerate", "fxrate"}),

	// --- sales ---
	def("order_id", "Order ID", CategorySales, TypeIdentifier,
		[]string{"order number", "order no", "order ref", "order reference", "purchase id", "transaction id"},
		[]string{"orderid", "ordernumber", "transactionid"}),
	def("order_date", "Order Date", CategorySales, TypeDate,
		[]string{"purchase date", "date of order", "ordered at", "sale date", "sold date"},
		[]string{"orderdate", "purchasedate", "saledate"}),
	def("order_status", "Order Status", CategorySales, TypeCategorical,
		[]string{"status", "fulfillment status", "order state"},
		[]string{"orderstatus", "status"}),
	def("order_value", "Order Value", CategorySales, TypeCurrency,
		[]string{"order amount", "purchase value", "purchase amount", "basket value"},
		[]string{"ordervalue", "orderamount"}),
	def("quantity", "Quantity", CategorySales, TypeNumber,
		[]string{"qty", "count", "units", "number of items", "item count"},
		[]string{"quantity", "qty"}),
	def("units_sold", "Units Sold", CategorySales, TypeNumber,
		[]string{"sold units", "unit sales", "volume sold", "sales volume"},
		[]string{"unitssold", "salesvolume"}),
	def("sales_channel", "Sales Channel", CategorySales, TypeCategorical,
		[]string{"channel", "sales medium", "order channel", "store channel"},
		[]string{"channel"}),
	def("sales_rep", "Sales Representative", CategorySales, TypeText,
		[]string{"salesperson", "sales agent", "rep name", "account executive", "seller"},
		[]string{"salesrep", "salesperson", "seller"}),
	def("deal_stage", "Deal Stage", CategorySales, TypeCategorical,
		[]string{"stage", "pipeline stage", "opportunity stage"},
		[]string{"stage"}),
	def("pipeline_value", "Pipeline Value", CategorySales, TypeCurrency,
		[]string{"opportunity value", "deal value", "deal size"},
		[]string{"pipeline", "dealvalue"}),
	def("conversion_rate", "Conversion Rate", CategorySales, TypePercentage,
		[]string{"conv rate", "cvr", "close rate"},
		[]string{"conversionrate", "cvr"}),
	def("quote_amount", "Quote Amount", CategorySales, TypeCurrency,
		[]string{"quoted value", "quotation amount", "estimate amount"},
		[]string{"quote"}),
	def("commission", "Commission", CategorySales, TypeCurrency,
		[]string{"commission amount", "commission paid", "broker fee"},
		[]string{"commission"}),
	def("sales_target", "Sales Target", CategorySales, TypeCurrency,
		[]string{"target", "quota", "sales goal", "target revenue"},
		[]string{"target", "quota"}),
	def("win_rate", "Win Rate", CategorySales, TypePercentage,
		[]string{"close ratio", "success rate"},
		[]string{"winrate"}),
	def("average_order_value", "Average Order Value", CategorySales, TypeCurrency,
		[]string{"aov", "avg order value", "mean order value"},
		[]string{"averageorder", "aov"}),
	def("transactions", "Transactions", CategorySales, TypeNumber,
		[]string{"transaction count", "number of transactions", "orders count", "num orders"},
		[]string{"transaction"}),
	def("basket_size", "Basket Size", CategorySales, TypeNumber,
		[]string{"items per order", "cart size", "avg basket"},
		[]string{"basket"}),
	def("returns_count", "Returns", CategorySales, TypeNumber,
		[]string{"returned items", "return count", "number of returns"},
		[]string{"return"}),

	// --- customer ---
	def("customer_id", "Customer ID", CategoryCustomer, TypeIdentifier,
		[]string{"customer number", "client id", "user id customer", "cust id", "buyer id", "member id"},
		[]string{"customerid", "custid", "clientid"}),
	def("customer_name", "Customer Name", CategoryCustomer, TypeText,
		[]string{"client name", "buyer name", "full name", "name of customer", "account name"},
		[]string{"customername", "clientname"}),
	def("email", "Email", CategoryCustomer, TypeText,
		[]string{"email address", "e-mail", "contact email", "mail"},
		[]string{"email"}),
	def("phone", "Phone", CategoryCustomer, TypeText,
		[]string{"phone number", "telephone", "mobile", "contact number", "cell"},
		[]string{"phone", "mobile"}),
	def("customer_segment", "Customer Segment", CategoryCustomer, TypeCategorical,
		[]string{"segment", "customer type", "customer group", "customer tier", "cohort"},
		[]string{"segment", "cohort"}),
	def("account_id", "Account ID", CategoryCustomer, TypeIdentifier,
		[]string{"account number", "acct id", "account ref"},
		[]string{"accountid", "accountnumber"}),
	def("signup_date", "Signup Date", CategoryCustomer, TypeDate,
		[]string{"registration date", "join date", "date joined", "enrolled date", "onboarding date"},
		[]string{"signup", "registration", "joindate"}),
	def("churn_rate", "Churn Rate", CategoryCustomer, TypePercentage,
		[]string{"attrition rate customer", "churn pct", "churn"},
		[]string{"churn"}),
	def("lifetime_value", "Lifetime Value", CategoryCustomer, TypeCurrency,
		[]string{"ltv", "clv", "customer value", "customer lifetime value"},
		[]string{"lifetimevalue", "ltv", "clv"}),
	def("satisfaction_score", "Satisfaction Score", CategoryCustomer, TypeNumber,
		[]string{"csat", "satisfaction", "customer satisfaction"},
		[]string{"satisfaction", "csat"}),
	def("nps", "Net Promoter Score", CategoryCustomer, TypeNumber,
		[]string{"promoter score", "nps score"},
		[]string{"nps", "promoter"}),
	def("age", "Age", CategoryCustomer, TypeNumber,
		[]string{"customer age", "age years"},
		[]string{"age"}),
	def("gender", "Gender", CategoryCustomer, TypeCategorical,
		[]string{"sex", "customer gender"},
		[]string{"gender"}),
	def("loyalty_tier", "Loyalty Tier", CategoryCustomer, TypeCategorical,
		[]string{"loyalty level", "membership tier", "membership level", "vip tier"},
		[]string{"loyalty", "tier"}),
	def("retention_rate", "Retention Rate", CategoryCustomer, TypePercentage,
		[]string{"retention", "repeat rate"},
		[]string{"retention"}),
	def("complaint_count", "Complaints", CategoryCustomer, TypeNumber,
		[]string{"complaints", "tickets", "support tickets", "issues raised"},
		[]string{"complaint", "ticket"}),
	def("customer_tenure", "Customer Tenure", CategoryCustomer, TypeNumber,
		[]string{"tenure", "months active", "years as customer"},
		[]string{"tenure"}),
	def("customer_status", "Customer Status", CategoryCustomer, TypeCategorical,
		[]string{"active status", "customer state", "account status"},
		[]string{"customerstatus", "accountstatus"}),

	// --- product ---
	def("product_id", "Product ID", CategoryProduct, TypeIdentifier,
		[]string{"product number", "item id", "item number", "prod id", "article id"},
		[]string{"productid", "itemid"}),
	def("product_name", "Product Name", CategoryProduct, TypeText,
		[]string{"item name", "product title", "item description", "article name"},
		[]string{"productname", "itemname"}),
	def("product_category", "Product Category", CategoryProduct, TypeCategorical,
		[]string{"category", "item category", "product group", "product line", "department product"},
		[]string{"category", "productline"}),
	def("brand", "Brand", CategoryProduct, TypeCategorical,
		[]string{"brand name", "manufacturer", "make", "vendor brand"},
		[]string{"brand", "manufacturer"}),
	def("sku", "SKU", CategoryProduct, TypeIdentifier,
		[]string{"stock keeping unit", "sku code", "upc", "ean", "barcode"},
		[]string{"sku", "barcode", "upc"}),
	def("product_cost", "Product Cost", CategoryProduct, TypeCurrency,
		[]string{"item cost", "cost per item", "wholesale cost"},
		[]string{"productcost", "itemcost"}),
	def("list_price", "List Price", CategoryProduct, TypeCurrency,
		[]string{"msrp", "rrp", "sticker price", "catalog price"},
		[]string{"listprice", "msrp"}),
	def("rating", "Rating", CategoryProduct, TypeNumber,
		[]string{"product rating", "star rating", "avg rating", "review score"},
		[]string{"rating", "star"}),
	def("review_count", "Review Count", CategoryProduct, TypeNumber,
		[]string{"reviews", "number of reviews", "total reviews"},
		[]string{"review"}),
	def("product_status", "Product Status", CategoryProduct, TypeCategorical,
		[]string{"availability", "active flag", "discontinued"},
		[]string{"productstatus", "availability"}),
	def("variant", "Variant", CategoryProduct, TypeCategorical,
		[]string{"product variant", "option", "style"},
		[]string{"variant"}),
	def("size", "Size", CategoryProduct, TypeCategorical,
		[]string{"product size", "item size"},
		[]string{"size"}),
	def("color", "Color", CategoryProduct, TypeCategorical,
		[]string{"colour", "product color"},
		[]string{"color", "colour"}),
	def("material", "Material", CategoryProduct, TypeCategorical,
		[]string{"fabric", "composition"},
		[]string{"material"}),
	def("launch_date", "Launch Date", CategoryProduct, TypeDate,
		[]string{"release date", "introduced date", "available from"},
		[]string{"launch", "release"}),
	def("product_margin", "Product Margin", CategoryProduct, TypePercentage,
		[]string{"item margin", "margin per product"},
		[]string{"productmargin"}),
	def("warranty_months", "Warranty Months", CategoryProduct, TypeNumber,
		[]string{"warranty", "warranty period", "guarantee months"},
		[]string{"warranty"}),

	// --- inventory ---
	def("stock_quantity", "Stock Quantity", CategoryInventory, TypeNumber,
		[]string{"stock", "stock level", "on hand", "qty on hand", "inventory", "inventory level", "units in stock"},
		[]string{"stock", "onhand", "inventory"}),
	def("reorder_point", "Reorder Point", CategoryInventory, TypeNumber,
		[]string{"reorder level", "min stock", "minimum stock"},
		[]string{"reorderpoint", "minstock"}),
	def("reorder_quantity", "Reorder Quantity", CategoryInventory, TypeNumber,
		[]string{"reorder qty", "order up to", "replenishment qty"},
		[]string{"reorderquantity", "replenish"}),
	def("warehouse", "Warehouse", CategoryInventory, TypeCategorical,
		[]string{"warehouse name", "depot", "distribution center", "dc", "fulfillment center"},
		[]string{"warehouse", "depot"}),
	def("bin_location", "Bin Location", CategoryInventory, TypeText,
		[]string{"bin", "shelf location", "storage location", "aisle"},
		[]string{"bin", "shelf"}),
	def("inventory_value", "Inventory Value", CategoryInventory, TypeCurrency,
		[]string{"stock value", "inventory worth", "stock valuation"},
		[]string{"inventoryvalue", "stockvalue"}),
	def("turnover_rate", "Turnover Rate", CategoryInventory, TypeNumber,
		[]string{"inventory turnover", "stock turn", "turns"},
		[]string{"turnover"}),
	def("days_on_hand", "Days on Hand", CategoryInventory, TypeNumber,
		[]string{"days of supply", "doh", "inventory days"},
		[]string{"daysonhand", "daysofsupply"}),
	def("safety_stock", "Safety Stock", CategoryInventory, TypeNumber,
		[]string{"buffer stock", "reserve stock"},
		[]string{"safetystock", "buffer"}),
	def("stock_status", "Stock Status", CategoryInventory, TypeCategorical,
		[]string{"inventory status", "in stock flag", "availability status"},
		[]string{"stockstatus"}),
	def("backorder_count", "Backorders", CategoryInventory, TypeNumber,
		[]string{"backordered units", "backorder qty", "on backorder"},
		[]string{"backorder"}),
	def("shrinkage_rate", "Shrinkage Rate", CategoryInventory, TypePercentage,
		[]string{"shrinkage", "loss rate", "stock loss"},
		[]string{"shrinkage"}),
	def("lead_time_days", "Lead Time Days", CategoryInventory, TypeNumber,
		[]string{"lead time", "supplier lead time", "replenishment time"},
		[]string{"leadtime"}),
	def("units_received", "Units Received", CategoryInventory, TypeNumber,
		[]string{"received qty", "inbound units", "goods received"},
		[]string{"received", "inbound"}),
	def("units_shipped", "Units Shipped", CategoryInventory, TypeNumber,
		[]string{"shipped qty", "outbound units", "dispatched units"},
		[]string{"shipped", "outbound"}),
	def("supplier_name", "Supplier", CategoryInventory, TypeText,
		[]string{"supplier", "vendor", "vendor name", "provider"},
		[]string{"supplier", "vendor"}),

	// --- operations ---
	def("store_id", "Store ID", CategoryOperations, TypeIdentifier,
		[]string{"store number", "branch id", "location id", "site id", "outlet id"},
		[]string{"storeid", "branchid", "locationid"}),
	def("store_name", "Store Name", CategoryOperations, TypeText,
		[]string{"branch name", "location name", "outlet", "site name"},
		[]string{"storename", "branch", "outlet"}),
	def("region", "Region", CategoryOperations, TypeCategorical,
		[]string{"sales region", "territory", "zone", "district", "area"},
		[]string{"region", "territory", "zone"}),
	def("country", "Country", CategoryOperations, TypeCategorical,
		[]string{"country name", "country code", "nation"},
		[]string{"country"}),
	def("state", "State", CategoryOperations, TypeCategorical,
		[]string{"province", "state code", "county"},
		[]string{"state", "province"}),
	def("city", "City", CategoryOperations, TypeCategorical,
		[]string{"town", "city name", "municipality"},
		[]string{"city", "town"}),
	def("postal_code", "Postal Code", CategoryOperations, TypeText,
		[]string{"zip", "zip code", "postcode"},
		[]string{"postal", "zip"}),
	def("employee_count", "Employee Count", CategoryOperations, TypeNumber,
		[]string{"headcount", "staff count", "number of employees", "fte"},
		[]string{"headcount", "employeecount"}),
	def("utilization_rate", "Utilization Rate", CategoryOperations, TypePercentage,
		[]string{"utilization", "capacity utilization", "usage rate"},
		[]string{"utilization"}),
	def("downtime_hours", "Downtime Hours", CategoryOperations, TypeNumber,
		[]string{"downtime", "outage hours", "hours down"},
		[]string{"downtime", "outage"}),
	def("defect_rate", "Defect Rate", CategoryOperations, TypePercentage,
		[]string{"defects pct", "error rate", "failure rate", "reject rate"},
		[]string{"defect", "errorrate"}),
	def("throughput", "Throughput", CategoryOperations, TypeNumber,
		[]string{"output", "units per hour", "production rate"},
		[]string{"throughput", "output"}),
	def("cycle_time", "Cycle Time", CategoryOperations, TypeNumber,
		[]string{"process time", "turnaround time", "tat"},
		[]string{"cycletime", "turnaround"}),
	def("capacity", "Capacity", CategoryOperations, TypeNumber,
		[]string{"max capacity", "total capacity", "capacity units"},
		[]string{"capacity"}),
	def("shift", "Shift", CategoryOperations, TypeCategorical,
		[]string{"work shift", "shift name", "shift code"},
		[]string{"shift"}),
	def("incident_count", "Incidents", CategoryOperations, TypeNumber,
		[]string{"incidents", "accidents", "safety events"},
		[]string{"incident", "accident"}),

	// --- marketing ---
	def("campaign_id", "Campaign ID", CategoryMarketing, TypeIdentifier,
		[]string{"campaign number", "campaign code", "promo id"},
		[]string{"campaignid"}),
	def("campaign_name", "Campaign Name", CategoryMarketing, TypeText,
		[]string{"campaign", "promotion name", "promo name", "initiative"},
		[]string{"campaign", "promotion"}),
	def("marketing_channel", "Marketing Channel", CategoryMarketing, TypeCategorical,
		[]string{"source", "medium", "traffic source", "acquisition channel", "utm source"},
		[]string{"source", "medium", "utm"}),
	def("impressions", "Impressions", CategoryMarketing, TypeNumber,
		[]string{"ad impressions", "views", "impression count"},
		[]string{"impression"}),
	def("clicks", "Clicks", CategoryMarketing, TypeNumber,
		[]string{"ad clicks", "click count", "total clicks"},
		[]string{"click"}),
	def("ctr", "Click-Through Rate", CategoryMarketing, TypePercentage,
		[]string{"click through rate", "clickthrough", "click rate"},
		[]string{"ctr", "clickthrough"}),
	def("cpc", "Cost per Click", CategoryMarketing, TypeCurrency,
		[]string{"cost per click", "avg cpc"},
		[]string{"cpc", "costperclick"}),
	def("cpm", "Cost per Mille", CategoryMarketing, TypeCurrency,
		[]string{"cost per thousand", "cost per mille"},
		[]string{"cpm"}),
	def("ad_spend", "Ad Spend", CategoryMarketing, TypeCurrency,
		[]string{"advertising spend", "media spend", "marketing spend", "ad cost", "ad budget"},
		[]string{"adspend", "mediaspend"}),
	def("conversions", "Conversions", CategoryMarketing, TypeNumber,
		[]string{"conversion count", "goal completions", "acquisitions"},
		[]string{"conversion"}),
	def("roas", "Return on Ad Spend", CategoryMarketing, TypeNumber,
		[]string{"return on ad spend", "roi marketing"},
		[]string{"roas"}),
	def("bounce_rate", "Bounce Rate", CategoryMarketing, TypePercentage,
		[]string{"bounces pct", "bounce"},
		[]string{"bounce"}),
	def("open_rate", "Open Rate", CategoryMarketing, TypePercentage,
		[]string{"email open rate", "opens pct"},
		[]string{"openrate"}),
	def("subscriber_count", "Subscribers", CategoryMarketing, TypeNumber,
		[]string{"subscribers", "list size", "audience size", "followers"},
		[]string{"subscriber", "follower"}),
	def("lead_source", "Lead Source", CategoryMarketing, TypeCategorical,
		[]string{"lead origin", "referral source", "how heard"},
		[]string{"leadsource", "referral"}),
	def("engagement_score", "Engagement Score", CategoryMarketing, TypeNumber,
		[]string{"engagement", "engagement rate", "interaction score"},
		[]string{"engagement"}),
	def("coupon_code", "Coupon Code", CategoryMarketing, TypeIdentifier,
		[]string{"promo code", "voucher code", "discount code"},
		[]string{"coupon", "promocode", "voucher"}),

	// --- hr ---
	def("employee_id", "Employee ID", CategoryHR, TypeIdentifier,
		[]string{"employee number", "staff id", "emp id", "worker id", "personnel number"},
		[]string{"employeeid", "empid", "staffid"}),
	def("employee_name", "Employee Name", CategoryHR, TypeText,
		[]string{"staff name", "worker name", "emp name"},
		[]string{"employeename", "staffname"}),
	def("department", "Department", CategoryHR, TypeCategorical,
		[]string{"dept", "division", "business unit", "team"},
		[]string{"department", "dept", "division"}),
	def("job_title", "Job Title", CategoryHR, TypeText,
		[]string{"title", "position", "role", "designation"},
		[]string{"jobtitle", "position", "role"}),
	def("salary", "Salary", CategoryHR, TypeCurrency,
		[]string{"base salary", "annual salary", "wage", "pay", "compensation"},
		[]string{"salary", "wage", "compensation"}),
	def("bonus", "Bonus", CategoryHR, TypeCurrency,
		[]string{"bonus amount", "incentive pay", "variable pay"},
		[]string{"bonus", "incentive"}),
	def("hire_date", "Hire Date", CategoryHR, TypeDate,
		[]string{"start date employment", "date hired", "joining date", "employment start"},
		[]string{"hiredate", "hired"}),
	def("termination_date", "Termination Date", CategoryHR, TypeDate,
		[]string{"end date employment", "leave date", "exit date", "separation date"},
		[]string{"termination", "exitdate"}),
	def("performance_rating", "Performance Rating", CategoryHR, TypeNumber,
		[]string{"review rating", "appraisal score", "performance score"},
		[]string{"performance", "appraisal"}),
	def("hours_worked", "Hours Worked", CategoryHR, TypeNumber,
		[]string{"work hours", "hours", "logged hours"},
		[]string{"hoursworked", "workhour"}),
	def("overtime_hours", "Overtime Hours", CategoryHR, TypeNumber,
		[]string{"overtime", "ot hours", "extra hours"},
		[]string{"overtime"}),
	def("absence_days", "Absence Days", CategoryHR, TypeNumber,
		[]string{"sick days", "days absent", "leave days", "pto days"},
		[]string{"absence", "sickday"}),
	def("manager_name", "Manager", CategoryHR, TypeText,
		[]string{"manager", "supervisor", "reports to", "line manager"},
		[]string{"manager", "supervisor"}),
	def("employment_type", "Employment Type", CategoryHR, TypeCategorical,
		[]string{"contract type", "full time part time", "worker type"},
		[]string{"employmenttype", "contracttype"}),
	def("training_hours", "Training Hours", CategoryHR, TypeNumber,
		[]string{"training", "learning hours", "course hours"},
		[]string{"training"}),
	def("attrition_rate", "Attrition Rate", CategoryHR, TypePercentage,
		[]string{"attrition", "staff turnover", "employee turnover"},
		[]string{"attrition"}),

	// --- logistics ---
	def("shipment_id", "Shipment ID", CategoryLogistics, TypeIdentifier,
		[]string{"shipment number", "consignment id", "waybill", "manifest id"},
		[]string{"shipmentid", "consignment", "waybill"}),
	def("carrier", "Carrier", CategoryLogistics, TypeCategorical,
		[]string{"shipping carrier", "courier", "freight company", "shipper"},
		[]string{"carrier", "courier"}),
	def("tracking_number", "Tracking Number", CategoryLogistics, TypeIdentifier,
		[]string{"tracking id", "tracking code", "track no"},
		[]string{"tracking"}),
	def("shipping_cost", "Shipping Cost", CategoryLogistics, TypeCurrency,
		[]string{"shipping fee", "delivery cost", "delivery fee", "postage"},
		[]string{"shippingcost", "deliverycost", "postage"}),
	def("ship_date", "Ship Date", CategoryLogistics, TypeDate,
		[]string{"shipped date", "dispatch date", "date shipped"},
		[]string{"shipdate", "dispatch"}),
	def("delivery_date", "Delivery Date", CategoryLogistics, TypeDate,
		[]string{"delivered date", "arrival date", "received date", "eta"},
		[]string{"deliverydate", "delivered", "arrival"}),
	def("delivery_status", "Delivery Status", CategoryLogistics, TypeCategorical,
		[]string{"shipment status", "shipping status", "in transit"},
		[]string{"deliverystatus", "shipmentstatus"}),
	def("origin", "Origin", CategoryLogistics, TypeText,
		[]string{"ship from", "origin city", "source location", "pickup location"},
		[]string{"origin", "shipfrom"}),
	def("destination", "Destination", CategoryLogistics, TypeText,
		[]string{"ship to", "destination city", "delivery address", "dropoff"},
		[]string{"destination", "shipto"}),
	def("package_weight", "Package Weight", CategoryLogistics, TypeNumber,
		[]string{"weight", "weight kg", "weight lbs", "gross weight"},
		[]string{"weight"}),
	def("freight_cost", "Freight Cost", CategoryLogistics, TypeCurrency,
		[]string{"freight", "freight charges", "haulage cost"},
		[]string{"freight"}),
	def("on_time_rate", "On-Time Rate", CategoryLogistics, TypePercentage,
		[]string{"on time delivery", "otd", "punctuality rate"},
		[]string{"ontime", "otd"}),
	def("transit_days", "Transit Days", CategoryLogistics, TypeNumber,
		[]string{"days in transit", "shipping days", "delivery days"},
		[]string{"transit"}),
	def("package_count", "Package Count", CategoryLogistics, TypeNumber,
		[]string{"packages", "parcels", "boxes", "cartons"},
		[]string{"package", "parcel", "carton"}),
	def("fuel_surcharge", "Fuel Surcharge", CategoryLogistics, TypeCurrency,
		[]string{"fuel fee", "fuel charge"},
		[]string{"fuel"}),

	// --- digital ---
	def("session_id", "Session ID", CategoryDigital, TypeIdentifier,
		[]string{"visit id", "session key"},
		[]string{"sessionid", "visitid"}),
	def("user_id", "User ID", CategoryDigital, TypeIdentifier,
		[]string{"visitor id", "account user id", "uid"},
		[]string{"userid", "visitorid"}),
	def("page_views", "Page Views", CategoryDigital, TypeNumber,
		[]string{"pageviews", "views page", "pages viewed", "pvs"},
		[]string{"pageview"}),
	def("sessions", "Sessions", CategoryDigital, TypeNumber,
		[]string{"visits", "session count", "total sessions"},
		[]string{"session", "visit"}),
	def("unique_visitors", "Unique Visitors", CategoryDigital, TypeNumber,
		[]string{"unique users", "uniques", "distinct visitors"},
		[]string{"unique", "visitor"}),
	def("session_duration", "Session Duration", CategoryDigital, TypeNumber,
		[]string{"avg session duration", "time on site", "visit duration", "dwell time"},
		[]string{"duration", "timeonsite"}),
	def("device_type", "Device Type", CategoryDigital, TypeCategorical,
		[]string{"device", "device category", "mobile desktop"},
		[]string{"device"}),
	def("browser", "Browser", CategoryDigital, TypeCategorical,
		[]string{"web browser", "user agent browser"},
		[]string{"browser"}),
	def("operating_system", "Operating System", CategoryDigital, TypeCategorical,
		[]string{"os", "platform os"},
		[]string{"operatingsystem"}),
	def("referrer", "Referrer", CategoryDigital, TypeText,
		[]string{"referring url", "referral url", "came from"},
		[]string{"referrer", "referringurl"}),
	def("landing_page", "Landing Page", CategoryDigital, TypeText,
		[]string{"entry page", "first page", "landing url"},
		[]string{"landing", "entrypage"}),
	def("exit_rate", "Exit Rate", CategoryDigital, TypePercentage,
		[]string{"exits pct", "exit percentage"},
		[]string{"exitrate"}),
	def("cart_abandonment_rate", "Cart Abandonment Rate", CategoryDigital, TypePercentage,
		[]string{"abandonment rate", "abandoned carts pct"},
		[]string{"abandonment", "abandoned"}),
	def("downloads", "Downloads", CategoryDigital, TypeNumber,
		[]string{"download count", "app downloads", "installs"},
		[]string{"download", "install"}),
	def("signups", "Signups", CategoryDigital, TypeNumber,
		[]string{"registrations", "new accounts", "sign ups"},
		[]string{"signup", "registrationcount"}),
	def("active_users", "Active Users", CategoryDigital, TypeNumber,
		[]string{"dau", "mau", "active accounts"},
		[]string{"activeuser", "dau", "mau"}),

	// --- temporal ---
	def("date", "Date", CategoryTemporal, TypeDate,
		[]string{"day", "calendar date", "record date", "entry date"},
		[]string{"date"}),
	def("transaction_date", "Transaction Date", CategoryTemporal, TypeDate,
		[]string{"txn date", "payment date", "posting date"},
		[]string{"transactiondate", "txndate"}),
	def("invoice_date", "Invoice Date", CategoryTemporal, TypeDate,
		[]string{"billing date", "billed on", "invoice issued"},
		[]string{"invoicedate", "billingdate"}),
	def("due_date", "Due Date", CategoryTemporal, TypeDate,
		[]string{"payment due", "deadline", "due on"},
		[]string{"duedate", "deadline"}),
	def("created_at", "Created At", CategoryTemporal, TypeDate,
		[]string{"creation date", "date created", "created on"},
		[]string{"createdat", "datecreated"}),
	def("updated_at", "Updated At", CategoryTemporal, TypeDate,
		[]string{"last updated", "modified date", "date modified", "last modified"},
		[]string{"updatedat", "modified"}),
	def("month", "Month", CategoryTemporal, TypeCategorical,
		[]string{"month name", "calendar month", "period month"},
		[]string{"month"}),
	def("quarter", "Quarter", CategoryTemporal, TypeCategorical,
		[]string{"fiscal quarter", "qtr", "quarter name"},
		[]string{"quarter", "qtr"}),
	def("year", "Year", CategoryTemporal, TypeNumber,
		[]string{"calendar year", "fiscal year", "fy"},
		[]string{"year"}),
	def("week", "Week", CategoryTemporal, TypeNumber,
		[]string{"week number", "iso week", "calendar week"},
		[]string{"week"}),
	def("fiscal_period", "Fiscal Period", CategoryTemporal, TypeCategorical,
		[]string{"accounting period", "period", "reporting period"},
		[]string{"fiscalperiod", "period"}),
	def("start_date", "Start Date", CategoryTemporal, TypeDate,
		[]string{"begin date", "from date", "effective date"},
		[]string{"startdate", "fromdate"}),
	def("end_date", "End Date", CategoryTemporal, TypeDate,
		[]string{"finish date", "to date", "expiry date", "expiration date"},
		[]string{"enddate", "todate", "expiry"}),
}
